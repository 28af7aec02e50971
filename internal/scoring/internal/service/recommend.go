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

import "github.com/resumatch/resumatch/internal/scoring/internal/domain"

// buildRecommendations 按各维度分数套规则出建议，阈值和文案是产品定死的
func buildRecommendations(overall float64, categories domain.Categories) []domain.Recommendation {
	var res []domain.Recommendation
	switch {
	case overall < 60:
		res = append(res, domain.Recommendation{
			Priority:    domain.PriorityHigh,
			Category:    "overall",
			Title:       "Major Resume Overhaul Needed",
			Description: "Your resume needs significant improvements across multiple sections to be ATS-competitive.",
		})
	case overall < 75:
		res = append(res, domain.Recommendation{
			Priority:    domain.PriorityMedium,
			Category:    "overall",
			Title:       "Good Foundation, Needs Optimization",
			Description: "Your resume has potential but needs targeted improvements to maximize ATS compatibility.",
		})
	}
	if categories.Header < 80 {
		res = append(res, domain.Recommendation{
			Priority:    domain.PriorityHigh,
			Category:    "contact",
			Title:       "Complete Contact Information",
			Description: "Ensure your resume includes email, phone, and professional profiles (LinkedIn, GitHub).",
		})
	}
	if categories.Experience < 70 {
		res = append(res, domain.Recommendation{
			Priority:    domain.PriorityHigh,
			Category:    "experience",
			Title:       "Strengthen Experience Section",
			Description: "Add quantified achievements, use action verbs, and include specific technologies used.",
		})
	}
	if categories.Education < 60 {
		res = append(res, domain.Recommendation{
			Priority:    domain.PriorityMedium,
			Category:    "education",
			Title:       "Clarify Educational Background",
			Description: "Clearly list degree types, institutions, and graduation dates. Include relevant coursework if applicable.",
		})
	}
	if categories.Skills < 70 {
		res = append(res, domain.Recommendation{
			Priority:    domain.PriorityHigh,
			Category:    "skills",
			Title:       "Expand Technical Skills",
			Description: "Add more relevant technical skills and organize them by category (Programming, Tools, Frameworks).",
		})
	}
	if categories.Projects < 70 {
		res = append(res, domain.Recommendation{
			Priority:    domain.PriorityMedium,
			Category:    "projects",
			Title:       "Showcase Technical Projects",
			Description: "Include personal projects with GitHub links and detailed technology stacks used.",
		})
	}
	if categories.Format < 80 {
		res = append(res, domain.Recommendation{
			Priority:    domain.PriorityMedium,
			Category:    "format",
			Title:       "Improve ATS Readability",
			Description: "Use clear section headers, bullet points, and avoid complex formatting that ATS systems cannot parse.",
		})
	}
	return res
}
