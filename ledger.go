package electorate

// BalanceLedger is the external spendable funds ledger.
// Debit fails on insufficient funds, Credit always succeeds
type BalanceLedger interface {
	Debit(addr Address, amount uint32) error
	Credit(addr Address, amount uint32)
	Balance(addr Address) uint64
}

// MembershipRegistry tell if an address is a recognized network participant
type MembershipRegistry interface {
	IsMember(addr Address) bool
}

// CouncilRegistry hold the active council. Current is read once at
// election start and Replace swaps it wholesale at completion.
// The active council must not be mutated while an election is in
// progress, both availability snapshots depend on it
type CouncilRegistry interface {
	Current() Council
	Replace(council Council)
}

// MemoryLedger is an in memory BalanceLedger
type MemoryLedger struct {
	balances map[Address]uint64
}

// NewMemoryLedger instantiate an empty in memory balance ledger
func NewMemoryLedger() *MemoryLedger {
	return &MemoryLedger{balances: make(map[Address]uint64)}
}

// Fund credits genesis funding to the provided address
func (m *MemoryLedger) Fund(addr Address, amount uint64) {
	m.balances[addr] += amount
}

// Debit removes amount from the spendable balance of addr.
// An error will be returned on insufficient funds
func (m *MemoryLedger) Debit(addr Address, amount uint32) error {
	if m.balances[addr] < uint64(amount) {
		return ErrInsufficientFunds
	}
	m.balances[addr] -= uint64(amount)
	return nil
}

// Credit adds amount to the spendable balance of addr
func (m *MemoryLedger) Credit(addr Address, amount uint32) {
	m.balances[addr] += uint64(amount)
}

// Balance return the spendable balance of addr
func (m *MemoryLedger) Balance(addr Address) uint64 {
	return m.balances[addr]
}

// MemoryRegistry is an in memory MembershipRegistry
type MemoryRegistry struct {
	members map[Address]bool
}

// NewMemoryRegistry instantiate a membership registry
// holding the provided members
func NewMemoryRegistry(members ...Address) *MemoryRegistry {
	registry := &MemoryRegistry{members: make(map[Address]bool)}
	for _, member := range members {
		registry.members[member] = true
	}
	return registry
}

// Register adds a member to the registry
func (m *MemoryRegistry) Register(addr Address) {
	m.members[addr] = true
}

// IsMember tell if addr has been registered
func (m *MemoryRegistry) IsMember(addr Address) bool {
	return m.members[addr]
}

// MemoryCouncilRegistry is an in memory CouncilRegistry
type MemoryCouncilRegistry struct {
	council Council
}

// NewMemoryCouncilRegistry instantiate a council registry
// holding the provided council
func NewMemoryCouncilRegistry(council Council) *MemoryCouncilRegistry {
	return &MemoryCouncilRegistry{council: council}
}

// Current return the active council
func (m *MemoryCouncilRegistry) Current() Council {
	return m.council
}

// Replace swaps the active council wholesale
func (m *MemoryCouncilRegistry) Replace(council Council) {
	m.council = council
}
