package entity

// ID is a unique identifier for an entity
type ID uint32

// Kind is the gameplay role of an entity.
// Every entity has exactly one kind for its whole lifetime.
type Kind int

const (
	KindNone Kind = iota
	KindPlayer
	KindEnemy
	KindLaser
	KindPowerUp
)

// String returns the string representation of the kind
func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "Player"
	case KindEnemy:
		return "Enemy"
	case KindLaser:
		return "Laser"
	case KindPowerUp:
		return "PowerUp"
	default:
		return "None"
	}
}

// Category is a contact filtering bitmask
type Category uint32

const (
	CategoryNone    Category = 0
	CategoryLaser   Category = 1 << 0
	CategoryPlayer  Category = 1 << 1
	CategoryEnemy   Category = 1 << 2
	CategoryPowerUp Category = 1 << 3
)

// Category returns the bitmask a body of this kind carries
func (k Kind) Category() Category {
	switch k {
	case KindPlayer:
		return CategoryPlayer
	case KindEnemy:
		return CategoryEnemy
	case KindLaser:
		return CategoryLaser
	case KindPowerUp:
		return CategoryPowerUp
	default:
		return CategoryNone
	}
}

// ContactMask returns the categories that raise a contact event
// when they overlap a body of this kind.
func (k Kind) ContactMask() Category {
	switch k {
	case KindPlayer:
		return CategoryEnemy | CategoryPowerUp
	case KindEnemy:
		return CategoryLaser | CategoryPlayer
	case KindLaser:
		return CategoryEnemy
	case KindPowerUp:
		return CategoryPlayer
	default:
		return CategoryNone
	}
}

// CollisionMask returns the categories this kind physically collides with.
// Interactions are contact-only, so this is always empty.
func (k Kind) CollisionMask() Category {
	return CategoryNone
}

// Contacts reports whether two kinds raise a contact event.
// Either side's contact mask is enough.
func Contacts(a, b Kind) bool {
	return a.ContactMask()&b.Category() != 0 || b.ContactMask()&a.Category() != 0
}

// Ref identifies one side of a contact together with its liveness
// at the moment the contact was detected.
type Ref struct {
	ID    ID
	Kind  Kind
	Pos   Vec
	Alive bool
}
