package repair

import "github.com/mendjson/jsonrepair/internal/value"

// topLevelDriver implements §4.11: repeatedly dispatch at the top
// level (no enclosing context), collecting every value produced.
// Concatenated documents of the same top-level type (scenario: two
// arrays or two objects back to back with nothing joining them) are
// collapsed into one; anything left over is returned as an array.
// Stray terminator characters at the top level are dropped one at a
// time to guarantee forward progress.
func (p *Parser) topLevelDriver() *value.Value {
	var results []*value.Value

	for {
		if p.sc.EOS() {
			break
		}
		out := p.dispatch()
		if out.isStop() {
			if _, ok := p.sc.GetCh(); !ok {
				break
			}
			continue
		}
		v := out.val
		if v == nil {
			continue
		}
		if s, ok := v.Str(); ok && s == "" {
			p.sc.GetCh()
			continue
		}
		results = append(results, v)
	}

	if len(results) == 0 {
		return nil
	}
	if len(results) == 1 {
		return results[0]
	}

	merged := collapseSameType(results)
	if len(merged) == 1 {
		return merged[0]
	}
	return value.Arr(merged)
}

// collapseSameType drops consecutive top-level values of the same
// container type in favor of the later one: two arrays or two objects
// appearing back to back are treated as the same document repeated or
// corrected, and only the later one is retained, matching the behavior
// a dropped comma between two concatenated documents should have
// produced.
func collapseSameType(results []*value.Value) []*value.Value {
	merged := []*value.Value{results[0]}

	for _, v := range results[1:] {
		last := merged[len(merged)-1]

		_, lastIsArr := last.Arr()
		_, vIsArr := v.Arr()
		if lastIsArr && vIsArr {
			merged[len(merged)-1] = v
			continue
		}

		_, lastIsObj := last.Obj()
		_, vIsObj := v.Obj()
		if lastIsObj && vIsObj {
			merged[len(merged)-1] = v
			continue
		}

		merged = append(merged, v)
	}

	return merged
}
