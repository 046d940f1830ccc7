package model

// GalleryItem 相簿图片，图片本体通过上传接口提交
type GalleryItem struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	ImageURL  string `json:"image_url"`
	CreatedAt Time   `json:"created_at"`
}
