package service

import (
	"regexp"
	"strings"

	"github.com/resumatch/resumatch/internal/parser/internal/domain"
)

var (
	emailRegexp    = regexp.MustCompile(`[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}`)
	phoneRegexp    = regexp.MustCompile(`\+?\d[\d\s().\-]{6,}\d`)
	linkedinRegexp = regexp.MustCompile(`linkedin\.com/in/[\w\-]+`)
	githubRegexp   = regexp.MustCompile(`github\.com/[\w\-]+`)
	// 名字行里不该出现的东西
	notNameRegexp = regexp.MustCompile(`@|http|www\.|\d{3}`)
)

func extractContact(text string, lines []string) domain.Contact {
	var c domain.Contact
	c.Email = emailRegexp.FindString(text)
	c.Phone = strings.TrimSpace(phoneRegexp.FindString(text))

	lower := strings.ToLower(text)
	c.LinkedIn = linkedinRegexp.FindString(lower)
	c.GitHub = githubRegexp.FindString(lower)
	c.Location = locationRegexp.FindString(text)

	// 名字基本都在最前面几行
	for i, line := range lines {
		if i >= 5 {
			break
		}
		if len(line) <= 2 || len(line) >= 50 {
			continue
		}
		if notNameRegexp.MatchString(line) || isAnyHeader(line) {
			continue
		}
		c.Name = line
		break
	}
	return c
}

func isAnyHeader(line string) bool {
	for _, re := range allHeaderRegexps {
		if re.MatchString(line) {
			return true
		}
	}
	return false
}
