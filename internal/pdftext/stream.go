package pdftext

import (
	"bytes"
	"io"
	"regexp"
	"strconv"

	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
)

// literalRe matches PDF string literals: (text here).
var literalRe = regexp.MustCompile(`\(([^)]*)\)`)

// streamText falls back to parsing the page's raw content stream for text
// operators. Coarser than the native arm but survives files rsc.io/pdf
// cannot decode.
func (d *Document) streamText(pageNr int) string {
	if d.pctx == nil {
		return ""
	}
	r, err := pdfcpu.ExtractPageContent(d.pctx, pageNr)
	if err != nil {
		d.log.Debug("content stream unavailable", "page", pageNr, "error", err)
		return ""
	}
	data, err := io.ReadAll(r)
	if err != nil || len(data) == 0 {
		return ""
	}
	return textFromStream(data)
}

// textFromStream walks content-stream lines and emits the arguments of the
// text-showing operators. Vertical moves (Td/TD with a downward offset, T*,
// the ' operator) become newlines so the ToC parser sees one physical line
// per output line.
func textFromStream(data []byte) string {
	var b bytes.Buffer
	for _, line := range bytes.Split(data, []byte{'\n'}) {
		line = bytes.TrimSpace(line)
		if len(line) == 0 {
			continue
		}
		switch {
		case bytes.HasSuffix(line, []byte("Tj")), bytes.HasSuffix(line, []byte("TJ")):
			writeLiterals(&b, line)
		case bytes.HasSuffix(line, []byte("'")) && bytes.Contains(line, []byte("(")):
			b.WriteByte('\n')
			writeLiterals(&b, line)
		case bytes.HasSuffix(line, []byte("Td")), bytes.HasSuffix(line, []byte("TD")):
			if movesDown(line) {
				b.WriteByte('\n')
			} else if b.Len() > 0 {
				b.WriteByte(' ')
			}
		case bytes.Equal(line, []byte("T*")):
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func writeLiterals(b *bytes.Buffer, line []byte) {
	for _, m := range literalRe.FindAllSubmatch(line, -1) {
		b.WriteString(decodeLiteral(m[1]))
	}
}

// movesDown reports whether a Td/TD operand pair has a negative ty, i.e.
// the cursor dropped to a lower line.
func movesDown(line []byte) bool {
	fields := bytes.Fields(line)
	if len(fields) < 3 {
		return false
	}
	ty, err := strconv.ParseFloat(string(fields[len(fields)-2]), 64)
	return err == nil && ty < 0
}

// decodeLiteral resolves the escape sequences PDF string literals allow,
// including octal character codes.
func decodeLiteral(raw []byte) string {
	var b bytes.Buffer
	for i := 0; i < len(raw); i++ {
		if raw[i] != '\\' || i+1 == len(raw) {
			b.WriteByte(raw[i])
			continue
		}
		i++
		switch c := raw[i]; c {
		case 'n':
			b.WriteByte('\n')
		case 'r':
			b.WriteByte('\r')
		case 't':
			b.WriteByte('\t')
		case '\\', '(', ')':
			b.WriteByte(c)
		default:
			if c < '0' || c > '7' {
				b.WriteByte(c)
				break
			}
			val := int(c - '0')
			for n := 0; n < 2 && i+1 < len(raw) && raw[i+1] >= '0' && raw[i+1] <= '7'; n++ {
				i++
				val = val*8 + int(raw[i]-'0')
			}
			b.WriteByte(byte(val))
		}
	}
	return b.String()
}
