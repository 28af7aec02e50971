package errs

var (
	SystemError = ErrorCode{Code: 516001, Msg: "系统错误"}
	// InvalidFile 文件类型不支持或者内容读不出来
	InvalidFile = ErrorCode{Code: 416001, Msg: "无法解析的简历文件"}
	// ReportNotFound 评估单号不存在
	ReportNotFound = ErrorCode{Code: 416002, Msg: "评估结果不存在"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
