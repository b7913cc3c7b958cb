package kotlin

// Modifier is a declaration modifier keyword. The set a spec node holds is
// unordered; rendering sorts into the conventional keyword order below.
type Modifier string

const (
	ModifierPublic    Modifier = "public"
	ModifierProtected Modifier = "protected"
	ModifierPrivate   Modifier = "private"
	ModifierInternal  Modifier = "internal"
	ModifierExpect    Modifier = "expect"
	ModifierActual    Modifier = "actual"
	ModifierFinal     Modifier = "final"
	ModifierOpen      Modifier = "open"
	ModifierAbstract  Modifier = "abstract"
	ModifierSealed    Modifier = "sealed"
	ModifierConst     Modifier = "const"
	ModifierExternal  Modifier = "external"
	ModifierOverride  Modifier = "override"
	ModifierLateinit  Modifier = "lateinit"
	ModifierTailrec   Modifier = "tailrec"
	ModifierSuspend   Modifier = "suspend"
	ModifierInner     Modifier = "inner"
	ModifierOperator  Modifier = "operator"
	ModifierInfix     Modifier = "infix"
	ModifierInline    Modifier = "inline"
	ModifierData      Modifier = "data"
)

var modifierOrder = map[Modifier]int{
	ModifierPublic:    0,
	ModifierProtected: 1,
	ModifierPrivate:   2,
	ModifierInternal:  3,
	ModifierExpect:    4,
	ModifierActual:    5,
	ModifierFinal:     6,
	ModifierOpen:      7,
	ModifierAbstract:  8,
	ModifierSealed:    9,
	ModifierConst:     10,
	ModifierExternal:  11,
	ModifierOverride:  12,
	ModifierLateinit:  13,
	ModifierTailrec:   14,
	ModifierSuspend:   15,
	ModifierInner:     16,
	ModifierOperator:  17,
	ModifierInfix:     18,
	ModifierInline:    19,
	ModifierData:      20,
}

// SortModifiers returns the modifiers in canonical keyword order, with
// duplicates removed. Unrecognized modifiers keep their relative order after
// the known ones.
func SortModifiers(mods []Modifier) []Modifier {
	var known []Modifier
	var unknown []Modifier
	seen := make(map[Modifier]bool, len(mods))
	for _, m := range mods {
		if seen[m] {
			continue
		}
		seen[m] = true
		if _, ok := modifierOrder[m]; ok {
			known = append(known, m)
		} else {
			unknown = append(unknown, m)
		}
	}
	for i := 1; i < len(known); i++ {
		for j := i; j > 0 && modifierOrder[known[j]] < modifierOrder[known[j-1]]; j-- {
			known[j], known[j-1] = known[j-1], known[j]
		}
	}
	return append(known, unknown...)
}

// HasModifier reports whether mods contains m.
func HasModifier(mods []Modifier, m Modifier) bool {
	for _, candidate := range mods {
		if candidate == m {
			return true
		}
	}
	return false
}
