// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package bulletin parses the raw text of a ZUGY weather-warning bulletin
// into a normalized record.
//
// Parsing is an ordered list of independent rules applied to the whole text
// rather than line by line. Each rule is optional and contributes at most one
// output line; a rule that finds nothing leaves its field empty.
package bulletin

import (
	"strings"

	"github.com/dlclark/regexp2"

	"github.com/tf1999tf/pdf-alert-processor/pkg/types"
)

const (
	// TitlePhrase is the fixed bulletin title.
	TitlePhrase = "贵阳龙洞堡机场天气警报"

	// BureauPhrase is the fixed issuing bureau.
	BureauPhrase = "贵阳龙洞堡机场气象台"

	sequenceLabel  = "预警发布序号"
	issueTimeLabel = "发布时间"
)

// Patterns use .NET-style semantics: \s and \d are Unicode-aware and "." stops
// at a line feed unless Singleline is set.
var (
	sequenceRe = regexp2.MustCompile(`预警发布序号[:：]\s*(\d+)`, regexp2.None)

	issueTimeRe = regexp2.MustCompile(`发布时间[:：]\s*([^。\n\r]+?北京时[）\)])`, regexp2.None)

	issueTimeStrictRe = regexp2.MustCompile(
		`发布时间[:：]\s*([0-9]{4}-[0-9]{2}-[0-9]{2}\s+[0-9]{2}:[0-9]{2}\s*（北京时）)`, regexp2.None)

	// bodySpanRe captures everything between the issue-time bracket and the
	// publisher marker, across lines.
	bodySpanRe = regexp2.MustCompile(`发布时间[:：][^。\n\r]+?北京时[）\)](.*?)发布人`, regexp2.Singleline)

	// issueTimeMarkerRe locates the end of the issue-time line when no
	// publisher marker follows.
	issueTimeMarkerRe = regexp2.MustCompile(`发布时间[:：][^。\n\r]+?北京时[）\)]`, regexp2.None)

	phoneRe = regexp2.MustCompile(`电话[：:].*`, regexp2.None)
	faxRe   = regexp2.MustCompile(`传真[：:].*`, regexp2.None)
)

// rule extracts one field of the record from the full text.
type rule func(text string, rec *types.BulletinRecord)

// rules run in output order: title, bureau, sequence, issue time, body.
var rules = []rule{
	func(text string, rec *types.BulletinRecord) {
		if strings.Contains(text, TitlePhrase) {
			rec.Title = TitlePhrase
		}
	},
	func(text string, rec *types.BulletinRecord) {
		if strings.Contains(text, BureauPhrase) {
			rec.Bureau = BureauPhrase
		}
	},
	func(text string, rec *types.BulletinRecord) {
		if n, ok := firstGroup(sequenceRe, text); ok {
			rec.WarningNumber = n
			rec.SequenceLine = sequenceLabel + "：" + n
		}
	},
	func(text string, rec *types.BulletinRecord) {
		for _, re := range []*regexp2.Regexp{issueTimeRe, issueTimeStrictRe} {
			if v, ok := firstGroup(re, text); ok {
				rec.IssueTimeLine = issueTimeLabel + "：" + v
				return
			}
		}
	},
	func(text string, rec *types.BulletinRecord) {
		if body := ExtractBody(text); body != "" {
			rec.Body = NormalizeBody(body)
		}
	},
}

// Parse applies every rule to text and returns the resulting record.
// WarningNumber defaults to types.DefaultWarningNumber.
func Parse(text string) types.BulletinRecord {
	rec := types.BulletinRecord{WarningNumber: types.DefaultWarningNumber}
	for _, r := range rules {
		r(text, &rec)
	}
	return rec
}

// ExtractBody returns the raw body text, before normalization. It prefers
// the span between the issue time and the publisher marker; without a
// publisher marker it takes everything after the issue time and drops the
// phone and fax lines. It returns "" when no issue-time marker is present.
func ExtractBody(text string) string {
	if body, ok := firstGroup(bodySpanRe, text); ok {
		return strings.TrimSpace(body)
	}

	m, err := issueTimeMarkerRe.FindStringMatch(text)
	if err != nil || m == nil {
		return ""
	}
	// regexp2 reports offsets in runes.
	rest := strings.TrimSpace(string([]rune(text)[m.Index+m.Length:]))
	rest = replaceAll(phoneRe, rest)
	rest = replaceAll(faxRe, rest)
	return rest
}

// NormalizeBody strips spaces, line feeds and carriage returns and makes the
// body end with exactly one CJK full stop. A trailing ASCII period is
// rewritten; an existing CJK full stop is kept. NormalizeBody is idempotent.
func NormalizeBody(body string) string {
	body = strings.NewReplacer(" ", "", "\n", "", "\r", "").Replace(body)
	switch {
	case strings.HasSuffix(body, "。"):
		return body
	case strings.HasSuffix(body, "."):
		return strings.TrimSuffix(body, ".") + "。"
	default:
		return body + "。"
	}
}

func firstGroup(re *regexp2.Regexp, text string) (string, bool) {
	m, err := re.FindStringMatch(text)
	if err != nil || m == nil {
		return "", false
	}
	return m.GroupByNumber(1).String(), true
}

func replaceAll(re *regexp2.Regexp, text string) string {
	out, err := re.Replace(text, "", -1, -1)
	if err != nil {
		return text
	}
	return out
}
