package calc

// Kind identifies a token produced by the scanner.
type Kind uint8

const (
	EOF Kind = iota
	Number
	Ident
	Plus
	Minus
	Star
	Slash
	Percent
	Caret
	LParen
	RParen
	Comma
	Assign
	Semi
)

// String returns the token kind the way error messages spell it.
func (k Kind) String() string {
	switch k {
	case EOF:
		return "end of input"
	case Number:
		return "number"
	case Ident:
		return "identifier"
	case Plus:
		return "'+'"
	case Minus:
		return "'-'"
	case Star:
		return "'*'"
	case Slash:
		return "'/'"
	case Percent:
		return "'%'"
	case Caret:
		return "'^'"
	case LParen:
		return "'('"
	case RParen:
		return "')'"
	case Comma:
		return "','"
	case Assign:
		return "'='"
	case Semi:
		return "';'"
	default:
		return "invalid token"
	}
}

// Token is one lexical element of calculator input. Off is the byte
// offset into the normalized input where the token starts.
type Token struct {
	Kind Kind
	Off  int
	Text string
}
