package ir

func Truth(v Value) bool {
	switch v.Type {
	case BoolKind:
		return v.Bool
	case FloatKind:
		return v.Float != 0
	case NumberKind:
		return v.Number != 0
	case BigNumberKind:
		return v.BigNumber != 0
	case StringKind, NameKind:
		return v.Text != ""
	case NoneKind:
		return false
	default:
		panic("kind")
	}
}
