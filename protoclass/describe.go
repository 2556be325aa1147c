package protoclass

// LevelInfo summarizes one descriptor level for introspection.
type LevelInfo struct {
	Name           string
	Depth          int
	HasConstructor bool
	Public         []string
	Private        []string
	// Overrides lists public names that replace a member inherited from an
	// ancestor level.
	Overrides []string
}

// Describe returns the chain of d ordered root first.
func Describe(d *Descriptor) []LevelInfo {
	var chain []*Descriptor
	for cur := d; cur != nil; cur = cur.super {
		chain = append(chain, cur)
	}

	levels := make([]LevelInfo, 0, len(chain))
	inherited := make(map[string]struct{})
	for i := len(chain) - 1; i >= 0; i-- {
		cur := chain[i]
		info := LevelInfo{
			Name:           cur.name,
			Depth:          len(chain) - i,
			HasConstructor: cur.constructor != nil,
			Public:         cur.PublicNames(),
			Private:        cur.PrivateNames(),
		}
		for _, name := range info.Public {
			if _, ok := inherited[name]; ok {
				info.Overrides = append(info.Overrides, name)
			}
		}
		for _, name := range info.Public {
			inherited[name] = struct{}{}
		}
		levels = append(levels, info)
	}
	return levels
}
