package xliff

import (
	"strconv"
	"strings"
)

// Skeleton describes an XLIFF 1.2 document to be generated from a list of
// sentences. Targets are prefilled with the source text so the file can be
// handed to a translator as-is.
type Skeleton struct {
	Original   string
	SourceLang string
	TargetLang string
	Sentences  []string
}

// xmlEscaper covers the characters that must not appear raw in element
// content. Newlines and other whitespace are left untouched; the generated
// source/target elements carry xml:space="preserve".
var xmlEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

// Render produces the XLIFF 1.2 document text. The layout is built by hand
// rather than through a marshaller so that the xml:space="preserve" content
// keeps its whitespace exactly while the structural elements stay indented.
func (sk Skeleton) Render() string {
	var b strings.Builder
	b.WriteString("<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n")
	b.WriteString("<xliff version=\"1.2\">\n")
	b.WriteString("  <file source-language=\"" + xmlEscaper.Replace(sk.SourceLang) +
		"\" target-language=\"" + xmlEscaper.Replace(sk.TargetLang) +
		"\" datatype=\"plaintext\" original=\"" + xmlEscaper.Replace(sk.Original) + "\">\n")
	b.WriteString("    <body>\n")

	for i, s := range sk.Sentences {
		esc := xmlEscaper.Replace(s)
		b.WriteString("      <trans-unit id=\"" + strconv.Itoa(i+1) + "\">\n")
		b.WriteString("        <source xml:space=\"preserve\">" + esc + "</source>\n")
		b.WriteString("        <target xml:space=\"preserve\">" + esc + "</target>\n")
		b.WriteString("      </trans-unit>\n")
	}

	b.WriteString("    </body>\n")
	b.WriteString("  </file>\n")
	b.WriteString("</xliff>\n")
	return b.String()
}
