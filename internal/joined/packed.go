package joined

// Packed stores A/C/G/T at two bits per base, four bases per byte.
type Packed struct {
	n    int
	data []byte
}

var (
	baseCode = [256]int8{}
	codeBase = [4]byte{'A', 'C', 'G', 'T'}
)

func init() {
	for i := range baseCode {
		baseCode[i] = -1
	}
	for code, b := range codeBase {
		baseCode[b] = int8(code)
		baseCode[b|0x20] = int8(code) // lower case
	}
}

// IsBase reports whether b is an unambiguous nucleotide (either case).
func IsBase(b byte) bool { return baseCode[b] >= 0 }

func newPacked(data []byte, n int) *Packed { return &Packed{n: n, data: data} }

// Len is the number of stored bases.
func (p *Packed) Len() int { return p.n }

// Bytes returns the packed representation (shared, do not modify).
func (p *Packed) Bytes() []byte { return p.data }

// Append stores b, which must satisfy IsBase.
func (p *Packed) Append(b byte) { p.appendCode(byte(baseCode[b])) }

// pad appends filler positions until Len is a multiple of align.
func (p *Packed) pad(align int) int {
	added := 0
	for align > 1 && p.n%align != 0 {
		p.appendCode(0)
		added++
	}
	return added
}

func (p *Packed) appendCode(code byte) {
	if p.n%4 == 0 {
		p.data = append(p.data, 0)
	}
	p.data[p.n/4] |= (code & 3) << (uint(p.n%4) * 2)
	p.n++
}

// At returns the base stored at i.
func (p *Packed) At(i int) byte {
	return codeBase[(p.data[i/4]>>(uint(i%4)*2))&3]
}

func packedSize(n int) int { return (n + 3) / 4 }
