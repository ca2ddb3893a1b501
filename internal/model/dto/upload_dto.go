package dto

// UploadResponse 文件上传响应；storage_key 是后续表单引用文件的唯一凭据
type UploadResponse struct {
	StorageKey string `json:"storage_key"`
	Kind       string `json:"kind"`
	FileName   string `json:"file_name"`
	SizeBytes  int64  `json:"size_bytes"`
}
