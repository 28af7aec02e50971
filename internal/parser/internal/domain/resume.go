package domain

// Resume 从简历原文解析出来的结构化数据
type Resume struct {
	// 候选人写在简历头部的职位
	HeaderTitle    string
	Contact        Contact
	Skills         []string
	Experiences    []Entry
	Educations     []Entry
	Projects       []Entry
	Certifications []Entry
}

// Entry 一个条目的原文片段，经验、教育、项目、证书都是这个形态
type Entry struct {
	Text string
}

type Contact struct {
	Name     string
	Email    string
	Phone    string
	Location string
	LinkedIn string
	GitHub   string
}
