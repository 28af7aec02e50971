// Copyright 2023 resumatch
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package service

import (
	"strings"
)

// 这些修饰词单独出现在职位开头时去掉，保留核心职位
var leadingModifiers = []string{"senior", "junior", "lead", "principal", "staff", "aspiring", "freelance"}

// 头部行经常长成 "NAME | Aspiring Data Scientist" 或 "Title - Company"
func splitTitleParts(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == '|' || r == '–' || r == '—' || r == '-'
	})
}

// extractHeaderTitle 从简历头部几行里找候选人自称的职位
func extractHeaderTitle(lines []string) string {
	var candidates []string
	limit := len(lines)
	if limit > 8 {
		limit = 8
	}
	for _, line := range lines[:limit] {
		for _, part := range splitTitleParts(line) {
			part = strings.TrimSpace(part)
			if len(part) <= 2 || len(part) >= 120 {
				continue
			}
			if notNameRegexp.MatchString(part) {
				continue
			}
			candidates = append(candidates, part)
		}
	}

	// 完整职位短语优先命中
	for _, cand := range candidates {
		candLower := strings.ToLower(cand)
		for _, title := range multiWordTitles {
			if strings.Contains(candLower, title) {
				return titleCase(title)
			}
		}
	}

	// 其次按关键词截一个两词窗口
	for _, cand := range candidates {
		words := strings.Fields(strings.ToLower(cand))
		for i, w := range words {
			if !isTitleKeyword(w) {
				continue
			}
			start := i - 2
			if start < 0 {
				start = 0
			}
			window := words[start : i+1]
			window = stripLeadingModifiers(window)
			if len(window) > 0 {
				return titleCase(strings.Join(window, " "))
			}
		}
	}

	// 兜底：第一个长得像职位的候选行
	for _, cand := range candidates {
		words := strings.Fields(cand)
		if len(words) < 2 || len(words) > 6 {
			continue
		}
		if cand == strings.ToUpper(cand) {
			continue
		}
		words = stripLeadingModifiers(words)
		if len(words) > 0 {
			return titleCase(strings.Join(words, " "))
		}
	}
	return ""
}

func isTitleKeyword(word string) bool {
	word = strings.Trim(word, ".,;:")
	for _, kw := range titleKeywords {
		if word == kw {
			return true
		}
	}
	return false
}

func stripLeadingModifiers(words []string) []string {
	for len(words) > 0 {
		first := strings.ToLower(words[0])
		stripped := false
		for _, mod := range leadingModifiers {
			if first == mod {
				words = words[1:]
				stripped = true
				break
			}
		}
		if !stripped {
			break
		}
	}
	return words
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		// ML、AI 这类缩写保持全大写
		if w == strings.ToUpper(w) && len(w) <= 3 {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + strings.ToLower(w[1:])
	}
	return strings.Join(words, " ")
}
