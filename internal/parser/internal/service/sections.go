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
	"regexp"
	"strings"

	"github.com/resumatch/resumatch/internal/parser/internal/domain"
)

const (
	maxExperiences    = 5
	maxEducations     = 3
	maxProjects       = 5
	maxCertifications = 10
	maxSkills         = 30
)

var (
	skillHeaderRegexp = regexp.MustCompile(`(?i)^(skills?|technical skills?|core competencies)\s*:?\s*$`)
	expHeaderRegexp   = regexp.MustCompile(`(?i)^(experience|work experience|employment|professional experience)\s*:?\s*$`)
	eduHeaderRegexp   = regexp.MustCompile(`(?i)^(education|academics?|qualifications?)\s*:?\s*$`)
	projHeaderRegexp  = regexp.MustCompile(`(?i)^(projects?|personal projects?|key projects?)\s*:?\s*$`)
	certHeaderRegexp  = regexp.MustCompile(`(?i)^(certifications?|certificates?|achievements?|awards?|honors?|accomplishments?)\s*:?\s*$`)

	bulletRegexp = regexp.MustCompile(`^\s*[•\-*·]\s*`)
	dateRegexp   = regexp.MustCompile(`\d{2}/\d{4}|\d{4}`)
	// 形如 City, ST 的地点
	locationRegexp = regexp.MustCompile(`\b[A-Z][a-z]+(?: [A-Z][a-z]+)?,\s*[A-Z]{2}\b`)
	// 形如 Company — Title 的经验条目头，破折号、连字符都认
	companyTitleRegexp = regexp.MustCompile(`^([A-Za-z][A-Za-z\s&.,]+(?:Pvt\.|Ltd\.|Inc\.|LLC|Studio|Solutions|Technologies|Systems|Corporation|Corp\.)?)\s*[—–-]\s*([A-Za-z].+)$`)
	// 形如 Name (Tech1, Tech2) 的项目头
	projectTechRegexp = regexp.MustCompile(`^[A-Za-z][^(]*\([^)]+\)`)
)

var allHeaderRegexps = []*regexp.Regexp{
	skillHeaderRegexp, expHeaderRegexp, eduHeaderRegexp, projHeaderRegexp, certHeaderRegexp,
}

// nonEmptyLines 逐行去掉首尾空白，丢弃空行
func nonEmptyLines(text string) []string {
	rawLines := strings.Split(text, "\n")
	lines := make([]string, 0, len(rawLines))
	for _, line := range rawLines {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// sectionLines 返回 headerRe 命中的小节正文，遇到下一个小节头为止
func sectionLines(lines []string, headerRe *regexp.Regexp) []string {
	var body []string
	inSection := false
	for _, line := range lines {
		if headerRe.MatchString(line) {
			inSection = true
			continue
		}
		if inSection && isOtherHeader(line, headerRe) {
			break
		}
		if inSection {
			body = append(body, line)
		}
	}
	return body
}

func isOtherHeader(line string, self *regexp.Regexp) bool {
	for _, re := range allHeaderRegexps {
		if re == self {
			continue
		}
		if re.MatchString(line) {
			return true
		}
	}
	return false
}

// containsSkill 按词边界匹配，c++、c#、ci/cd 这种带符号的技能也要能匹配上
func containsSkill(textLower, skill string) bool {
	idx := 0
	for {
		i := strings.Index(textLower[idx:], skill)
		if i < 0 {
			return false
		}
		start := idx + i
		end := start + len(skill)
		if boundaryBefore(textLower, start) && boundaryAfter(textLower, end) {
			return true
		}
		idx = start + 1
	}
}

func boundaryBefore(s string, i int) bool {
	if i == 0 {
		return true
	}
	return !isWordChar(s[i-1])
}

func boundaryAfter(s string, i int) bool {
	if i >= len(s) {
		return true
	}
	c := s[i]
	// c++ 后面紧跟 + 说明匹配的只是前缀
	return !isWordChar(c) && c != '+' && c != '#'
}

func isWordChar(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= '0' && c <= '9'
}

func extractSkills(text string, lines []string) []string {
	textLower := strings.ToLower(text)
	sectionText := strings.ToLower(strings.Join(sectionLines(lines, skillHeaderRegexp), " "))

	found := make([]string, 0, maxSkills)
	seen := make(map[string]struct{}, maxSkills)
	appendSkill := func(skill string) {
		if _, ok := seen[skill]; ok || len(found) >= maxSkills {
			return
		}
		seen[skill] = struct{}{}
		found = append(found, skill)
	}

	// 先扫技能小节，再扫全文兜底没有独立技能小节的简历
	for _, skill := range commonSkills {
		if sectionText != "" && containsSkill(sectionText, skill) {
			appendSkill(skill)
		}
	}
	for _, skill := range commonSkills {
		if containsSkill(textLower, skill) {
			appendSkill(skill)
		}
	}
	return found
}

func extractExperiences(lines []string) []domain.Entry {
	body := sectionLines(lines, expHeaderRegexp)
	var entries []domain.Entry
	var current []string

	flush := func() {
		if len(current) == 0 {
			return
		}
		text := strings.Join(current, "\n")
		if len(text) > 20 && len(entries) < maxExperiences {
			entries = append(entries, domain.Entry{Text: text})
		}
		current = nil
	}

	for _, line := range body {
		if bulletRegexp.MatchString(line) ||
			containsAnyWord(strings.ToLower(line), achievementWords) ||
			strings.HasSuffix(line, "—") || strings.HasSuffix(line, "-") ||
			len(line) < 15 {
			continue
		}
		if m := companyTitleRegexp.FindStringSubmatch(line); m != nil {
			flush()
			current = []string{strings.TrimSpace(m[1]) + " — " + strings.TrimSpace(m[2])}
			continue
		}
		// 条目头后面只收一行日期或地点
		if len(current) == 1 && isDateOrLocation(line) {
			current = append(current, line)
		}
	}
	flush()
	return entries
}

func isDateOrLocation(line string) bool {
	if containsAnyWord(strings.ToLower(line), achievementWords) {
		return false
	}
	return strings.Contains(strings.ToLower(line), "remote") ||
		locationRegexp.MatchString(line) ||
		dateRegexp.MatchString(line)
}

func containsAnyWord(textLower string, words []string) bool {
	for _, w := range words {
		if strings.Contains(textLower, w) {
			return true
		}
	}
	return false
}

func extractEducations(lines []string) []domain.Entry {
	body := sectionLines(lines, eduHeaderRegexp)
	var entries []domain.Entry
	var current []string

	flush := func() {
		if len(current) == 0 {
			return
		}
		text := strings.Join(current, "\n")
		if len(text) > 15 && len(entries) < maxEducations {
			entries = append(entries, domain.Entry{Text: text})
		}
		current = nil
	}

	for _, line := range body {
		if containsAnyWord(strings.ToLower(line), institutionWords) && len(line) > 15 {
			flush()
			current = []string{line}
			continue
		}
		// 院校行下面最多带三行：地点、时间、学位
		if len(current) > 0 && len(current) < 4 {
			current = append(current, line)
		}
	}
	flush()
	return entries
}

func extractProjects(lines []string) []domain.Entry {
	body := sectionLines(lines, projHeaderRegexp)
	var entries []domain.Entry
	var current []string

	flush := func() {
		if len(current) == 0 {
			return
		}
		// 只保留标题行，丢掉描述
		title := current[0]
		if len(strings.Join(current, "\n")) > 15 && len(entries) < maxProjects {
			entries = append(entries, domain.Entry{Text: title})
		}
		current = nil
	}

	for _, line := range body {
		if isProjectHeader(line) {
			flush()
			current = []string{line}
			continue
		}
		if len(current) == 1 && !bulletRegexp.MatchString(line) {
			lower := strings.ToLower(line)
			if strings.Contains(lower, "github.com") || strings.Contains(line, "[GitHub]") || len(line) < 50 {
				current = append(current, line)
			}
		}
	}
	flush()
	return entries
}

func isProjectHeader(line string) bool {
	if projectTechRegexp.MatchString(line) {
		return true
	}
	if bulletRegexp.MatchString(line) {
		return false
	}
	if len(line) <= 10 || len(line) >= 100 {
		return false
	}
	for _, noun := range projectNouns {
		if strings.Contains(line, noun) {
			return true
		}
	}
	return false
}

func extractCertifications(lines []string) []domain.Entry {
	body := sectionLines(lines, certHeaderRegexp)
	entries := make([]domain.Entry, 0, maxCertifications)
	for _, line := range body {
		if len(entries) >= maxCertifications {
			break
		}
		entry := strings.TrimSpace(bulletRegexp.ReplaceAllString(line, ""))
		if len(entry) <= 10 || certHeaderRegexp.MatchString(entry) {
			continue
		}
		if len(entry) > 300 {
			entry = entry[:300]
		}
		entries = append(entries, domain.Entry{Text: entry})
	}
	return entries
}
