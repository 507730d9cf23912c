package persona

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestRenderContainsKnowledgeBase(t *testing.T) {
	rendered := Default().Render()

	for _, want := range []string{
		"Hrushi Bhanvadiya",
		"hrushibhanvadiya@gmail.com",
		"FinGuide",
		"Axon OS",
		"Retrieval-Augmented Generation",
		"IMPORTANT RULES",
	} {
		if !strings.Contains(rendered, want) {
			t.Errorf("Expected rendered context to contain %q", want)
		}
	}
}

func TestRenderIsDeterministic(t *testing.T) {
	if Default().Render() != Default().Render() {
		t.Error("Expected identical renders of the immutable profile")
	}
}

func TestApologyReplyTruncation(t *testing.T) {
	long := strings.Repeat("e", 200)
	reply := Default().ApologyReply(long)

	if strings.Contains(reply, long) {
		t.Error("Expected diagnostic truncated to 100 characters")
	}
	if !strings.Contains(reply, strings.Repeat("e", 100)) {
		t.Error("Expected the truncated diagnostic prefix")
	}
	if !strings.Contains(reply, Default().Email) {
		t.Error("Expected the fallback email")
	}
}

func TestApologyReplyTruncatesOnRuneBoundary(t *testing.T) {
	// 40 three-byte runes (120 bytes); byte 100 falls mid-rune, so the cut
	// must back up to 99 bytes (33 whole runes).
	long := strings.Repeat("語", 40)
	reply := Default().ApologyReply(long)

	if !utf8.ValidString(reply) {
		t.Error("Expected valid UTF-8 after truncation")
	}
	if !strings.Contains(reply, strings.Repeat("語", 33)) {
		t.Error("Expected 33 whole runes to survive")
	}
	if strings.Contains(reply, strings.Repeat("語", 34)) {
		t.Error("Expected truncation below the byte limit")
	}
}

func TestApologyReplyShortDiagnostic(t *testing.T) {
	reply := Default().ApologyReply("quota exceeded")
	if !strings.Contains(reply, "quota exceeded") {
		t.Errorf("Expected full short diagnostic, got %q", reply)
	}
}

func TestCannedStrings(t *testing.T) {
	p := Default()

	if !strings.Contains(p.UnavailableReply(), "unavailable") || !strings.Contains(p.UnavailableReply(), p.Email) {
		t.Error("Unavailable reply must name the condition and the email")
	}
	if !strings.Contains(p.Greeting(), p.BotName) {
		t.Error("Greeting must introduce the bot")
	}
	if !strings.Contains(p.ConnectivityReply(), p.Email) {
		t.Error("Connectivity apology must carry the email")
	}
	if len(p.Suggestions()) == 0 {
		t.Error("Expected canned suggestions")
	}
}
