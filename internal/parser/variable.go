package parser

// isVariable classifies an identifier as a discourse variable, ported
// from the original implementation's finite-state recognizer: a
// variable is one of the letters x, y, z, r, s, t, u, v, w, optionally
// followed by an underscore and then one or more digits, or directly by
// one or more digits (x1, r_12, v). Anything else — including any other
// bare letter, like "c" or "P" — is a constant or predicate name.
func isVariable(token string) bool {
	if token == "" {
		return false
	}
	runes := []rune(token)

	switch runes[0] {
	case 'x', 'y', 'z', 'r', 's', 't', 'u', 'v', 'w':
	default:
		return false
	}
	if len(runes) == 1 {
		return true
	}

	i := 1
	if runes[i] == '_' {
		i++
		if i == len(runes) {
			return false // trailing underscore with no digits: not accepted
		}
	}
	for ; i < len(runes); i++ {
		if runes[i] < '0' || runes[i] > '9' {
			return false
		}
	}
	return true
}
