package domain

// BizSkillMatch 技能语义匹配
const BizSkillMatch = "skill_match"

type EmbedRequest struct {
	Biz string
	// 请求id
	Tid string
	// 要向量化的文本
	Texts []string
}

type EmbedResponse struct {
	// Vectors 和请求里的 Texts 一一对应
	Vectors [][]float64
	// 花费的 token
	Tokens int64
}

type EmbedRecord struct {
	Id     int64
	Tid    string
	Biz    string
	Texts  []string
	Tokens int64
	Status RecordStatus
	Ctime  int64
	Utime  int64
}

type RecordStatus uint8

func (g RecordStatus) ToUint8() uint8 {
	return uint8(g)
}

const (
	RecordStatusProcessing RecordStatus = 0
	RecordStatusSuccess    RecordStatus = 1
	RecordStatusFailed     RecordStatus = 2
)
