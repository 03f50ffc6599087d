package sim

// Handle identifies an entity for its whole lifetime. Handles are never reused
// within an Engine.
type Handle uint32

// Kind tags what an entity is.
type Kind uint8

const (
	KindProjectile Kind = iota
	KindBlast
	KindStructure
	KindPickup
	KindDebris
	KindGround
)

func (k Kind) String() string {
	switch k {
	case KindProjectile:
		return "projectile"
	case KindBlast:
		return "blast"
	case KindStructure:
		return "structure"
	case KindPickup:
		return "pickup"
	case KindDebris:
		return "debris"
	case KindGround:
		return "ground"
	default:
		return "unknown"
	}
}

// Team tags which side an entity fights for.
type Team uint8

const (
	TeamNone Team = iota
	TeamDefender
	TeamHostile
)

func (t Team) String() string {
	switch t {
	case TeamDefender:
		return "defender"
	case TeamHostile:
		return "hostile"
	default:
		return "none"
	}
}

// StructureKind distinguishes plain buildings from launch installations.
type StructureKind uint8

const (
	StructureBuilding StructureKind = iota
	StructureInstallation
)

func (s StructureKind) String() string {
	if s == StructureInstallation {
		return "installation"
	}
	return "building"
}

// Location names the three installation slots.
type Location uint8

const (
	Left Location = iota
	Middle
	Right
)

// Locations lists every installation slot in launch order.
var Locations = [...]Location{Left, Middle, Right}

func (l Location) String() string {
	switch l {
	case Left:
		return "left"
	case Middle:
		return "middle"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}

// PickupKind is the effect a pickup grants when collected.
type PickupKind uint8

const (
	PickupScore PickupKind = iota
	PickupBlastBonus
	PickupSpeedBonus
)

func (p PickupKind) String() string {
	switch p {
	case PickupScore:
		return "score"
	case PickupBlastBonus:
		return "blast"
	case PickupSpeedBonus:
		return "speed"
	default:
		return "unknown"
	}
}

// Footprint is the axis-aligned hit box of a structure, centred at the
// structure position shifted vertically by OffsetY.
type Footprint struct {
	HalfW   float64
	HalfH   float64
	OffsetY float64
}

// Contains reports whether p lies strictly inside the footprint placed at c.
func (f Footprint) Contains(c, p Vec2) bool {
	cy := c.Y + f.OffsetY
	return p.X > c.X-f.HalfW && p.X < c.X+f.HalfW &&
		p.Y > cy-f.HalfH && p.Y < cy+f.HalfH
}

// Missile is the projectile component.
type Missile struct {
	Origin Vec2
	Target Vec2
}

// Blast is the decaying explosion component.
type Blast struct {
	Size       float64
	BaseRadius float64
}

// Structure is the destructible-footprint component.
type Structure struct {
	Kind      StructureKind
	Footprint Footprint
}

// Silo is the ammunition component carried by installations.
type Silo struct {
	Location  Location
	Ammo      int
	Reload    Timer
	Reloading bool
}

// PickupInfo is the pickup component.
type PickupInfo struct {
	Kind PickupKind
}

// Debris is the wreckage left behind by a destroyed structure.
type Debris struct {
	Of StructureKind
}

// Entity is the uniform record for everything in the world. Optional
// components are nil when absent.
type Entity struct {
	Handle Handle
	Kind   Kind
	Team   Team
	Pos    Vec2
	Vel    Vec2
	Radius float64
	Born   uint64 // tick in which the entity was spawned

	Missile   *Missile
	Blast     *Blast
	Structure *Structure
	Silo      *Silo
	Pickup    *PickupInfo
	Debris    *Debris

	alive bool
}

// Alive reports whether the entity has not been despawned.
func (e *Entity) Alive() bool {
	return e.alive
}

// View is a read-only copy of an entity for presentation code.
type View struct {
	Handle    Handle
	Kind      Kind
	Team      Team
	Pos       Vec2
	Radius    float64
	Origin    Vec2 // projectiles only
	Target    Vec2 // projectiles only
	Size      float64
	Structure StructureKind
	Location  Location
	Pickup    PickupKind
}

func (e *Entity) view() View {
	v := View{
		Handle: e.Handle,
		Kind:   e.Kind,
		Team:   e.Team,
		Pos:    e.Pos,
		Radius: e.Radius,
	}
	if e.Missile != nil {
		v.Origin = e.Missile.Origin
		v.Target = e.Missile.Target
	}
	if e.Blast != nil {
		v.Size = e.Blast.Size
	}
	if e.Structure != nil {
		v.Structure = e.Structure.Kind
	}
	if e.Debris != nil {
		v.Structure = e.Debris.Of
	}
	if e.Silo != nil {
		v.Location = e.Silo.Location
	}
	if e.Pickup != nil {
		v.Pickup = e.Pickup.Kind
	}
	return v
}
