package domain

// JD 一份岗位描述，按内容哈希去重
type JD struct {
	Id int64
	// Sha256 原文的十六进制哈希
	Sha256 string
	Text   string
	// UsageCount 被用来评估过多少次
	UsageCount int64
	Utime      int64
}
