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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleResume = `John Doe
Machine Learning Engineer
john.doe@example.com | +1 415 555 0199
linkedin.com/in/john-doe | github.com/johndoe
San Francisco, CA

SKILLS
Python, PyTorch, Docker, Kubernetes, SQL

EXPERIENCE
Acme Corp. — Machine Learning Engineer
San Francisco, CA | 06/2021 - Present
• Built model serving platform
Globex Inc. — Data Scientist
Remote | 2019 - 2021

EDUCATION
Stanford University
Stanford, CA
M.S. in Computer Science

PROJECTS
Churn Prediction Platform (Python, PyTorch)
github.com/johndoe/churn

CERTIFICATIONS
• AWS Certified Machine Learning Specialty
`

func TestService_Parse(t *testing.T) {
	svc := NewService()
	resume := svc.Parse(sampleResume)

	assert.Equal(t, "Machine Learning Engineer", resume.HeaderTitle)

	assert.Equal(t, "John Doe", resume.Contact.Name)
	assert.Equal(t, "john.doe@example.com", resume.Contact.Email)
	assert.Equal(t, "+1 415 555 0199", resume.Contact.Phone)
	assert.Equal(t, "linkedin.com/in/john-doe", resume.Contact.LinkedIn)
	assert.Equal(t, "github.com/johndoe", resume.Contact.GitHub)
	assert.Equal(t, "San Francisco, CA", resume.Contact.Location)

	assert.Subset(t, resume.Skills, []string{
		"python", "pytorch", "docker", "kubernetes", "sql", "machine learning", "aws",
	})
	// 技能小节里的先出
	assert.Equal(t, "python", resume.Skills[0])

	require.Len(t, resume.Experiences, 2)
	assert.Equal(t, "Acme Corp. — Machine Learning Engineer\nSan Francisco, CA | 06/2021 - Present",
		resume.Experiences[0].Text)
	assert.Equal(t, "Globex Inc. — Data Scientist\nRemote | 2019 - 2021",
		resume.Experiences[1].Text)

	require.Len(t, resume.Educations, 1)
	assert.Equal(t, "Stanford University\nStanford, CA\nM.S. in Computer Science",
		resume.Educations[0].Text)

	require.Len(t, resume.Projects, 1)
	assert.Equal(t, "Churn Prediction Platform (Python, PyTorch)", resume.Projects[0].Text)

	require.Len(t, resume.Certifications, 1)
	assert.Equal(t, "AWS Certified Machine Learning Specialty", resume.Certifications[0].Text)
}

func TestService_Parse_Empty(t *testing.T) {
	svc := NewService()
	resume := svc.Parse("")
	assert.Empty(t, resume.HeaderTitle)
	assert.Empty(t, resume.Contact.Email)
	assert.Empty(t, resume.Skills)
	assert.Empty(t, resume.Experiences)
	assert.Empty(t, resume.Educations)
	assert.Empty(t, resume.Projects)
	assert.Empty(t, resume.Certifications)
}

func TestExtractHeaderTitle(t *testing.T) {
	testCases := []struct {
		name string
		text string
		want string
	}{
		{
			name: "完整职位短语",
			text: "Jane Roe\nSenior Data Scientist | Example Labs",
			want: "Data Scientist",
		},
		{
			name: "按关键词截取",
			text: "Jane Roe\nPlatform Infrastructure Engineer",
			want: "Platform Infrastructure Engineer",
		},
		{
			name: "去掉开头的修饰词",
			text: "Jane Roe\nAspiring Backend Developer",
			want: "Backend Developer",
		},
		{
			name: "普通连字符也当分隔符",
			text: "Jane Roe\nData Engineer - Example Labs",
			want: "Data Engineer",
		},
		{
			name: "没有职位",
			text: "SKILLS\npython sql redis aws docker kubernetes linux",
			want: "",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := extractHeaderTitle(nonEmptyLines(tc.text))
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestExtractSkills_NoSection(t *testing.T) {
	// 没有技能小节时全文兜底
	text := "Worked with python and docker on aws"
	skills := extractSkills(text, nonEmptyLines(text))
	assert.ElementsMatch(t, []string{"python", "docker", "aws"}, skills)
}

func TestContainsSkill(t *testing.T) {
	testCases := []struct {
		name  string
		text  string
		skill string
		want  bool
	}{
		{name: "整词命中", text: "expert in go and java", skill: "java", want: true},
		{name: "前缀不算", text: "javascript only", skill: "java", want: false},
		{name: "c++ 不被 c 吞掉", text: "c++ developer", skill: "c++", want: true},
		{name: "ai 不匹配 email", text: "email me", skill: "ai", want: false},
		{name: "ci/cd 带斜杠", text: "ci/cd pipelines", skill: "ci/cd", want: true},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, containsSkill(tc.text, tc.skill))
		})
	}
}
