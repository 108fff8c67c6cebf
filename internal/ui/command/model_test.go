package command

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	tests := []struct {
		line string
		want CommandMsg
	}{
		{"import ~/hw/fall term.csv", CommandMsg{Verb: VerbImport, Arg: "~/hw/fall term.csv"}},
		{"  Tab   Biology 101 ", CommandMsg{Verb: VerbTab, Arg: "Biology 101"}},
		{"q", CommandMsg{Verb: VerbQuit}},
		{"dash", CommandMsg{Verb: VerbDashboard}},
		{"new", CommandMsg{Verb: VerbNew}},
		{"", CommandMsg{}},
	}
	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			assert.Equal(t, tt.want, Parse(tt.line))
		})
	}
}
