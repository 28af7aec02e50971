package service

import (
	"regexp"
	"strings"
)

var wordRegexp = regexp.MustCompile(`\b[a-zA-Z+#]{2,}\b`)

// 岗位描述里不算关键词的虚词
var stopWords = map[string]struct{}{
	"the": {}, "a": {}, "an": {}, "and": {}, "or": {}, "but": {}, "in": {}, "on": {}, "at": {}, "to": {}, "for": {},
	"of": {}, "with": {}, "by": {}, "from": {}, "as": {}, "is": {}, "was": {}, "are": {}, "were": {}, "be": {},
	"have": {}, "has": {}, "had": {}, "do": {}, "does": {}, "did": {}, "will": {}, "would": {}, "should": {},
	"can": {}, "could": {}, "may": {}, "might": {}, "must": {}, "shall": {},
}

const maxKeywords = 30

// extractKeywords 岗位描述没写出已知技能时的兜底，按出现顺序去重取前 30 个词
func extractKeywords(text string) []string {
	words := wordRegexp.FindAllString(strings.ToLower(text), -1)
	seen := make(map[string]struct{}, len(words))
	keywords := make([]string, 0, maxKeywords)
	for _, w := range words {
		if _, ok := stopWords[w]; ok {
			continue
		}
		if _, ok := seen[w]; ok {
			continue
		}
		seen[w] = struct{}{}
		keywords = append(keywords, w)
		if len(keywords) >= maxKeywords {
			break
		}
	}
	return keywords
}
