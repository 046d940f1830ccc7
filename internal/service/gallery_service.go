package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/yanggu0413/yles503-react/internal/client"
	"github.com/yanggu0413/yles503-react/internal/dto"
	"github.com/yanggu0413/yles503-react/internal/model"
)

// GalleryService 后台相簿管理
type GalleryService interface {
	// List 按上传时间从新到旧
	List(ctx context.Context) ([]model.GalleryItem, error)
	// Upload 上传图片；title 为空时 API 收到的标题为文件名
	Upload(ctx context.Context, title string, file *dto.UploadFile) (*model.GalleryItem, error)
	UpdateTitle(ctx context.Context, id int64, req *dto.GalleryItemRequest) (*model.GalleryItem, error)
	Delete(ctx context.Context, id int64) error
}

type galleryService struct {
	api    client.GalleryAPI
	logger *zap.Logger
}

// NewGalleryService 创建 GalleryService 实例
func NewGalleryService(api client.GalleryAPI, logger *zap.Logger) GalleryService {
	return &galleryService{api: api, logger: logger}
}

func (s *galleryService) List(ctx context.Context) ([]model.GalleryItem, error) {
	list, err := s.api.List(ctx)
	if err != nil {
		return nil, err
	}
	return sortGallery(list), nil
}

func (s *galleryService) Upload(ctx context.Context, title string, file *dto.UploadFile) (*model.GalleryItem, error) {
	if err := validateUpload(file); err != nil {
		return nil, err
	}
	item, err := s.api.Upload(ctx, title, file)
	if err != nil {
		return nil, err
	}
	s.logger.Info("图片已上传", zap.String("file", file.Name), zap.Int64("id", item.ID))
	return item, nil
}

func (s *galleryService) UpdateTitle(ctx context.Context, id int64, req *dto.GalleryItemRequest) (*model.GalleryItem, error) {
	if err := dto.Validate(req); err != nil {
		return nil, err
	}
	return s.api.Update(ctx, id, req)
}

func (s *galleryService) Delete(ctx context.Context, id int64) error {
	return s.api.Delete(ctx, id)
}

func validateUpload(file *dto.UploadFile) error {
	if file == nil || file.Name == "" || len(file.Content) == 0 {
		return &dto.ValidationError{Field: "File", Message: "請選擇要上傳的檔案"}
	}
	return nil
}
