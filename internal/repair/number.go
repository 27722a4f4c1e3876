package repair

import (
	"math/big"
	"strconv"
	"strings"
	"unicode"

	"github.com/mendjson/jsonrepair/internal/ctxstack"
	"github.com/mendjson/jsonrepair/internal/value"
)

// numberClass is C from §4.5: the character class a numeric run may
// contain. Comma doubles as a decimal separator in LLM output, so it's
// excluded (numberClassNoComma) when the enclosing context is an array,
// where comma instead separates elements.
const numberClass = "0123456789-.eE/,"
const numberClassNoComma = "0123456789-.eE/"

// parseNumber greedily consumes a run of numeric-class characters,
// classifies it, and falls back to the string parser when the run
// turns out to be the start of an unquoted word (§4.5 step 3). The
// bool result is only false in the defensive case where the dispatcher
// invoked us on a character that, against its own precondition, isn't
// actually in the numeric class — callers should treat that as "no
// progress" and fall back to consuming one character themselves.
func (p *Parser) parseNumber() (*value.Value, bool) {
	start := p.sc.Save()

	class := numberClass
	if top, ok := p.ctx.Top(); ok && top == ctxstack.Array {
		class = numberClassNoComma
	}

	var runes []rune
	for {
		r, ok := p.sc.Peek(0)
		if !ok || !strings.ContainsRune(class, r) {
			break
		}
		p.sc.GetCh()
		runes = append(runes, r)
	}

	if len(runes) == 0 {
		return nil, false
	}

	text := string(runes)
	droppedComma := false
	if last := runes[len(runes)-1]; last == '-' || last == 'e' || last == 'E' || last == ',' {
		text = string(runes[:len(runes)-1])
		droppedComma = last == ','
	}

	// Step 3: if what follows the run is a letter, this was actually an
	// unquoted word (e.g. "1notanumber"); rewind fully and delegate.
	if r, ok := p.sc.Peek(0); ok && unicode.IsLetter(r) {
		p.sc.Restore(start)
		return p.parseString(), true
	}

	// Step 4: trailing garbage quote. After a dropped separator comma the
	// quote opens the next key or value instead, so it is left in place.
	if r, ok := p.sc.Peek(0); ok && r == '"' && !droppedComma {
		p.sc.GetCh()
	}

	return classifyNumber(text), true
}

// classifyNumber implements §4.5 step 5-6.
func classifyNumber(text string) *value.Value {
	if text == "" {
		return value.Str("")
	}

	if strings.HasSuffix(text, ".") {
		stripped := strings.TrimSuffix(text, ".")
		if f, err := strconv.ParseFloat(stripped, 64); err == nil {
			return value.Float(f)
		}
		return value.Str(text)
	}

	if strings.ContainsRune(text, ',') {
		replaced := strings.ReplaceAll(text, ",", ".")
		if f, err := strconv.ParseFloat(replaced, 64); err == nil {
			return value.Float(f)
		}
		return value.Str(text)
	}

	if strings.ContainsAny(text, ".eE") {
		if f, err := strconv.ParseFloat(text, 64); err == nil {
			return value.Float(f)
		}
		return value.Str(text)
	}

	if bi, ok := new(big.Int).SetString(text, 10); ok {
		return value.Int(bi)
	}
	return value.Str(text)
}
