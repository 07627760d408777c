package llm_test

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"

	"mailtriage/internal/domain"
	"mailtriage/internal/llm"
)

func TestTruncate(t *testing.T) {
	assert.Equal(t, "ação", llm.Truncate("ação urgente", 4))
	assert.Equal(t, "short", llm.Truncate("short", 10))
	assert.Equal(t, "unlimited", llm.Truncate("unlimited", 0))
	assert.True(t, utf8.ValidString(llm.Truncate("éééééé", 3)))
}

func TestBuildClassificationPrompt(t *testing.T) {
	content := strings.Repeat("a", 1500)
	p := llm.BuildClassificationPrompt(content, 1000)

	assert.Contains(t, p, "REQUIRES_ACTION")
	assert.Contains(t, p, "NO_ACTION_NEEDED")
	assert.Contains(t, p, `"category"`)
	assert.Contains(t, p, `"reasoning"`)
	assert.Contains(t, p, strings.Repeat("a", 1000))
	assert.NotContains(t, p, strings.Repeat("a", 1001))
}

func TestBuildReplyPrompt_RequiresAction(t *testing.T) {
	p := llm.BuildReplyPrompt("Preciso de uma atualização sobre o chamado.", domain.CategoryRequiresAction, 500)

	assert.Contains(t, p, "2 to 5 lines")
	assert.Contains(t, p, "next steps")
	assert.Contains(t, p, "Preciso de uma atualização sobre o chamado.")
	assert.Contains(t, p, "same language as the email")
}

func TestBuildReplyPrompt_NoActionNeeded(t *testing.T) {
	long := strings.Repeat("b", 800)
	p := llm.BuildReplyPrompt(long, domain.CategoryNoActionNeeded, 500)

	assert.Contains(t, p, "2 to 3 lines")
	assert.NotContains(t, p, "next steps")
	assert.Contains(t, p, strings.Repeat("b", 500))
	assert.NotContains(t, p, strings.Repeat("b", 501))
}
