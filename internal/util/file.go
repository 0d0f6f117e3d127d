package util

import (
	"io"
	"net/http"
)

const sniffLen = 512

// SniffMimeType 读取文件头部做内容探测，调用方负责把 reader Seek 回起点
func SniffMimeType(r io.Reader) (string, error) {
	head := make([]byte, sniffLen)
	n, err := io.ReadFull(r, head)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return "", err
	}
	return http.DetectContentType(head[:n]), nil
}

// IsPDF 检测是否为 PDF
func IsPDF(mimeType string) bool {
	return mimeType == MimePDF
}
