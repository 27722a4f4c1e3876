package repair

import (
	"strings"

	"github.com/mendjson/jsonrepair/internal/ctxstack"
	"github.com/mendjson/jsonrepair/internal/value"
)

// parseObject implements §4.8. The dispatcher has already consumed the
// opening '{'; parseObject just runs the shared body loop.
func (p *Parser) parseObject() *value.Value {
	return p.parseObjectBody()
}

// parseObjectBody is the body loop shared by a normally-opened object
// and the synthetic object array.go builds when it finds a bare
// "key": value run with no enclosing braces at all. It stops on a
// real '}' (consumed), on a ']' belonging to an enclosing array (left
// for the caller to see), or at EOF.
func (p *Parser) parseObjectBody() *value.Value {
	obj := value.NewObject()

	for {
		p.sc.SkipWS()

		r, ok := p.sc.Peek(0)
		if !ok {
			return value.Obj(obj)
		}

		switch r {
		case '}':
			p.sc.GetCh()
			return value.Obj(obj)
		case ']':
			return value.Obj(obj)
		case ',', ';':
			p.sc.GetCh()
			continue
		}

		if p.parseComment() {
			continue
		}

		// Dangling-array merge (§4.10): a bare array turning up where a
		// key was expected is almost always a continuation of the
		// object's most recently assigned array value, the separating
		// key having been dropped by whatever mangled the document.
		if r == '[' {
			p.sc.GetCh()
			arrVal := p.parseArray()
			p.mergeDanglingArray(obj, arrVal)
			continue
		}

		keyStart := p.sc.Save()
		key, hadColon, stop := p.parseObjectKey()
		if stop {
			// A stray colon (§4.8 step 4) already consumes the colon and
			// its value itself; only fall back to dropping one character
			// when parseObjectKey made no progress at all.
			if p.sc.Save() != keyStart {
				continue
			}
			if _, ok := p.sc.GetCh(); !ok {
				return value.Obj(obj)
			}
			continue
		}

		// Duplicate-key split: a repeated key almost always means the
		// author concatenated a second, independent document onto the
		// first rather than intending an overwrite. Stop here and
		// rewind so the top-level driver re-parses the rest fresh.
		if obj.Has(key) {
			p.sc.Restore(keyStart)
			return value.Obj(obj)
		}

		if !hadColon {
			p.handleMissingColon(obj, key)
			continue
		}

		p.sc.SkipWS()
		p.ctx.Push(ctxstack.ObjectValue)
		out := p.dispatch()
		p.ctx.Pop()

		if out.isStop() {
			obj.Set(key, value.Null())
			continue
		}
		obj.Set(key, out.val)
	}
}

// handleMissingColon implements §4.8 steps 7-8: a key parsed with no
// colon at all following it. What comes next decides the outcome:
//   - nothing parseable (stop token), or the key itself is a
//     true/false/null word: the key alone stands for boolean true.
//   - a real value directly juxtaposed: that value belongs to key.
//   - a real value immediately followed by a colon: the "value" we
//     just read was actually the next key; this key gets true and
//     roles swap.
func (p *Parser) handleMissingColon(obj *value.Object, key string) {
	if isBoolNullWord(key) {
		obj.Set(key, value.Bool(true))
		return
	}

	p.ctx.Push(ctxstack.ObjectValue)
	out := p.dispatch()
	p.ctx.Pop()

	if out.isStop() {
		obj.Set(key, value.Bool(true))
		return
	}

	p.sc.SkipWS()
	if r, ok := p.sc.Peek(0); ok && r == ':' {
		nextKey, isStr := out.val.Str()
		if !isStr {
			obj.Set(key, out.val)
			return
		}
		obj.Set(key, value.Bool(true))
		p.sc.GetCh()
		p.sc.SkipWS()
		p.ctx.Push(ctxstack.ObjectValue)
		out2 := p.dispatch()
		p.ctx.Pop()
		if out2.isStop() {
			obj.Set(nextKey, value.Bool(true))
		} else {
			obj.Set(nextKey, out2.val)
		}
		return
	}

	obj.Set(key, out.val)
}

// mergeDanglingArray appends arrVal's elements onto the object's most
// recently set value if that value is itself an array; otherwise it
// has no key to attach to, so it's filed under the empty key rather
// than silently dropped. Per §4.10 step 2, when arrVal itself holds
// exactly one element that is itself an array, the inner array is what
// gets appended, not arrVal's single-element wrapper around it — e.g.
// "[1] [[2,3]]" extends to [1,2,3], not [1,[2,3]].
func (p *Parser) mergeDanglingArray(obj *value.Object, arrVal *value.Value) {
	if last := obj.Last(); last != nil {
		if lastArr, ok := last.Arr(); ok {
			elems, _ := arrVal.Arr()
			if len(elems) == 1 {
				if inner, ok := elems[0].Arr(); ok {
					elems = inner
				}
			}
			obj.SetLast(value.Arr(append(append([]*value.Value{}, lastArr...), elems...)))
			return
		}
	}
	obj.Set("", arrVal)
}

// parseObjectKey reads one key. stop is true when the cursor is
// sitting on a closer with no key present at all, or when a stray
// colon turns up with no key in front of it (§4.8 step 4): there the
// key comes back with zero progress made, and the colon plus whatever
// value follows it are discarded wholesale rather than filed under an
// empty key.
func (p *Parser) parseObjectKey() (key string, hadColon bool, stop bool) {
	p.sc.SkipWS()
	r, ok := p.sc.Peek(0)
	if !ok || r == '}' || r == ']' {
		return "", false, true
	}

	before := p.sc.Save()
	p.ctx.Push(ctxstack.ObjectKey)
	v := p.parseString()
	p.ctx.Pop()
	key, _ = v.Str()

	if p.sc.Save() == before {
		if r2, ok2 := p.sc.Peek(0); ok2 && r2 == ':' {
			p.sc.GetCh()
			p.sc.SkipWS()
			p.ctx.Push(ctxstack.ObjectValue)
			p.dispatch()
			p.ctx.Pop()
			return "", false, true
		}
	}

	p.sc.SkipWS()
	if r2, ok2 := p.sc.Peek(0); ok2 && r2 == ':' {
		p.sc.GetCh()
		hadColon = true
		p.sc.SkipWS()
	}
	return key, hadColon, false
}

// isBoolNullWord reports whether s is true/false/null case-insensitively.
func isBoolNullWord(s string) bool {
	switch strings.ToLower(s) {
	case "true", "false", "null":
		return true
	default:
		return false
	}
}
