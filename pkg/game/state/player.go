package state

// Item is an inventory entry: a named marker with a shop price,
// looked up by name for effect dispatch.
type Item struct {
	Name  string
	Price int
}

// Player is the persistent player character. Name and coins survive
// across levels; position is reset at every level start. Hit points
// are private so every write goes through the clamping setter and no
// unclamped intermediate value is ever observable.
type Player struct {
	X, Y  int
	Name  string
	Coins int

	hp    int
	maxHP int

	Inventory []Item
}

// NewPlayer creates a player at full health.
func NewPlayer(name string, maxHP int) *Player {
	if maxHP < 1 {
		maxHP = 1
	}
	return &Player{Name: name, hp: maxHP, maxHP: maxHP}
}

// HP returns the current hit points.
func (p *Player) HP() int {
	return p.hp
}

// MaxHP returns the hit point ceiling.
func (p *Player) MaxHP() int {
	return p.maxHP
}

// SetHP assigns hit points, clamped into [0, MaxHP].
func (p *Player) SetHP(hp int) {
	if hp < 0 {
		hp = 0
	}
	if hp > p.maxHP {
		hp = p.maxHP
	}
	p.hp = hp
}

// Damage lowers hit points by amount and reports whether the player is
// still alive.
func (p *Player) Damage(amount int) bool {
	p.SetHP(p.hp - amount)
	return p.hp > 0
}

// Heal raises hit points by amount, clamped at MaxHP.
func (p *Player) Heal(amount int) {
	p.SetHP(p.hp + amount)
}

// MoveTo repositions the player.
func (p *Player) MoveTo(x, y int) {
	p.X, p.Y = x, y
}

// AddItem appends an item to the inventory.
func (p *Player) AddItem(item Item) {
	p.Inventory = append(p.Inventory, item)
}

// CountItem returns how many inventory entries match name.
func (p *Player) CountItem(name string) int {
	count := 0
	for _, it := range p.Inventory {
		if it.Name == name {
			count++
		}
	}
	return count
}

// RemoveItem removes the first inventory entry matching name and
// reports whether one was found.
func (p *Player) RemoveItem(name string) bool {
	for i, it := range p.Inventory {
		if it.Name == name {
			p.Inventory = append(p.Inventory[:i], p.Inventory[i+1:]...)
			return true
		}
	}
	return false
}

// PlayerSnapshot is the persistent slice of the player state exchanged
// with the persistence collaborator. The on-disk format is its
// concern, not ours.
type PlayerSnapshot struct {
	Name  string
	Coins int
}

// Snapshot returns the persistent player fields.
func (p *Player) Snapshot() PlayerSnapshot {
	return PlayerSnapshot{Name: p.Name, Coins: p.Coins}
}

// PlayerFromSnapshot rebuilds a player from persisted data.
func PlayerFromSnapshot(snap PlayerSnapshot, maxHP int) *Player {
	p := NewPlayer(snap.Name, maxHP)
	if p.Name == "" {
		p.Name = "Player"
	}
	p.Coins = snap.Coins
	return p
}
