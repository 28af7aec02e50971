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
	"github.com/resumatch/resumatch/internal/parser/internal/domain"
)

//go:generate mockgen -source=./parser.go -destination=../../mocks/parser.mock.go -package=parsermocks -typed=true Service
type Service interface {
	// Parse 把简历纯文本解析成结构化数据
	Parse(text string) domain.Resume
	// ExtractSkills 单独抽技能，岗位描述那边也要用
	ExtractSkills(text string) []string
}

type service struct{}

func NewService() Service {
	return &service{}
}

func (s *service) ExtractSkills(text string) []string {
	return extractSkills(text, nonEmptyLines(text))
}

func (s *service) Parse(text string) domain.Resume {
	lines := nonEmptyLines(text)
	return domain.Resume{
		HeaderTitle:    extractHeaderTitle(lines),
		Contact:        extractContact(text, lines),
		Skills:         extractSkills(text, lines),
		Experiences:    extractExperiences(lines),
		Educations:     extractEducations(lines),
		Projects:       extractProjects(lines),
		Certifications: extractCertifications(lines),
	}
}
