package render

import (
	"io"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/goserg/teambalancer/internal/domain"
)

const separator = " – "

// Teams writes two titled listings, one line per player.
func Teams(w io.Writer, titleA string, a []domain.Line, titleB string, b []domain.Line) error {
	var buf strings.Builder
	writeTeam(&buf, titleA, a)
	buf.WriteString("\n")
	writeTeam(&buf, titleB, b)
	_, err := io.WriteString(w, buf.String())
	return err
}

func writeTeam(buf *strings.Builder, title string, lines []domain.Line) {
	buf.WriteString(title)
	buf.WriteString("\n")
	for _, l := range lines {
		buf.WriteString(l.Name)
		buf.WriteString(separator)
		buf.WriteString(l.Rank)
		if l.Role != "" {
			buf.WriteString(separator)
			buf.WriteString(RoleName(l.Role))
		}
		buf.WriteString("\n")
	}
}

// RoleName is the display form of a role, e.g. "Support".
func RoleName(r domain.Role) string {
	return cases.Title(language.Und).String(string(r))
}
