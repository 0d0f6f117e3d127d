package util

// DateFormat 全站统一的日期格式，接口出入参均使用
const DateFormat = "2006-01-02"

// 存储后端类型
const (
	StorageLocal = "local"
	StorageMinio = "minio"
)

// MimePDF 答题提交只接受 PDF
const MimePDF = "application/pdf"
