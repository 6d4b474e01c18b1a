package setup

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scriptedPrompter(lines ...string) (*Prompter, *bytes.Buffer) {
	out := &bytes.Buffer{}
	return NewPrompter(strings.NewReader(strings.Join(lines, "\n")+"\n"), out), out
}

func TestPrompt(t *testing.T) {
	t.Run("returns_trimmed_input", func(t *testing.T) {
		p, out := scriptedPrompter("  nas  ")

		got, err := p.Prompt("Name: ")

		require.NoError(t, err)
		assert.Equal(t, "nas", got)
		assert.Equal(t, "Name: ", out.String())
	})

	t.Run("exhausted_input_is_eof", func(t *testing.T) {
		p := NewPrompter(strings.NewReader(""), &bytes.Buffer{})

		_, err := p.Prompt("Name: ")

		assert.ErrorIs(t, err, io.EOF)
	})
}

func TestPromptWithDefault(t *testing.T) {
	t.Run("empty_input_falls_back", func(t *testing.T) {
		p, out := scriptedPrompter("")

		got, err := p.PromptWithDefault("SSH port", "22")

		require.NoError(t, err)
		assert.Equal(t, "22", got)
		assert.Contains(t, out.String(), "SSH port [22]: ")
	})

	t.Run("input_wins_over_default", func(t *testing.T) {
		p, _ := scriptedPrompter("2222")

		got, err := p.PromptWithDefault("SSH port", "22")

		require.NoError(t, err)
		assert.Equal(t, "2222", got)
	})
}

func TestPromptPassword(t *testing.T) {
	t.Run("reads_a_line_outside_a_terminal", func(t *testing.T) {
		p, _ := scriptedPrompter("s3cret")

		got, err := p.PromptPassword("Password: ")

		require.NoError(t, err)
		assert.Equal(t, "s3cret", got)
	})
}

func TestConfirm(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		defaultYes bool
		want       bool
	}{
		{"yes", "y", false, true},
		{"yes_spelled_out", "YES", false, true},
		{"no", "n", true, false},
		{"empty_uses_default_no", "", false, false},
		{"empty_uses_default_yes", "", true, true},
		{"garbage_means_no", "maybe", true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, _ := scriptedPrompter(tt.input)

			got, err := p.Confirm("Continue?", tt.defaultYes)

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSelect(t *testing.T) {
	t.Run("returns_zero_based_index", func(t *testing.T) {
		p, out := scriptedPrompter("2")

		idx, err := p.Select("Pick one", []string{"nas", "vps"})

		require.NoError(t, err)
		assert.Equal(t, 1, idx)
		assert.Contains(t, out.String(), "1) nas")
		assert.Contains(t, out.String(), "2) vps")
	})

	t.Run("reprompts_on_invalid_choice", func(t *testing.T) {
		p, out := scriptedPrompter("0", "abc", "1")

		idx, err := p.Select("Pick one", []string{"nas", "vps"})

		require.NoError(t, err)
		assert.Equal(t, 0, idx)
		assert.Contains(t, out.String(), "Please enter a number between 1 and 2")
	})

	t.Run("exhausted_input_stops_the_retry_loop", func(t *testing.T) {
		p := NewPrompter(strings.NewReader(""), &bytes.Buffer{})

		_, err := p.Select("Pick one", []string{"nas", "vps"})

		assert.ErrorIs(t, err, io.EOF)
	})

	t.Run("invalid_choice_followed_by_eof_stops_too", func(t *testing.T) {
		p, _ := scriptedPrompter("99")

		_, err := p.Select("Pick one", []string{"nas", "vps"})

		assert.ErrorIs(t, err, io.EOF)
	})
}

func TestConfirmEOF(t *testing.T) {
	p := NewPrompter(strings.NewReader(""), &bytes.Buffer{})

	_, err := p.Confirm("Continue?", true)

	assert.ErrorIs(t, err, io.EOF)
}
