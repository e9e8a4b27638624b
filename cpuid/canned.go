package cpuid

// Leaf selects a CPUID input pair.
type Leaf struct {
	Leaf    uint32
	Subleaf uint32
}

// Canned answers queries from a fixed table, and counts the calls made
// for each leaf. Unknown leaves answer with zeroed registers.
// Not safe for concurrent use.
type Canned struct {
	Regs  map[Leaf]Regs
	Calls map[Leaf]int
}

var _ Querier = (*Canned)(nil)

// NewCanned creates a Canned querier answering leaf 0 with vendor and
// leaf 1 with feature.
func NewCanned(vendor, feature Regs) (cq *Canned) {
	cq = &Canned{
		Regs: map[Leaf]Regs{
			{Leaf: LEAF_VENDOR}:  vendor,
			{Leaf: LEAF_FEATURE}: feature,
		},
	}
	return
}

func (cq *Canned) Query(leaf, subleaf uint32) (regs Regs) {
	key := Leaf{Leaf: leaf, Subleaf: subleaf}

	if cq.Calls == nil {
		cq.Calls = map[Leaf]int{}
	}
	cq.Calls[key]++

	regs = cq.Regs[key]
	return
}
