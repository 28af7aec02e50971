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

package domain

// Report 搜索索引里的评估报告
type Report struct {
	Id             int64
	Tid            string
	Filename       string
	HeaderTitle    string
	Name           string
	Email          string
	Skills         []string
	MatchedSkills  []string
	MissingSkills  []string
	OverallScore   float64
	Classification string
	EsHighLights   map[string][]string
	Ctime          int64
	Utime          int64
}
