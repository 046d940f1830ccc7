package client

import (
	"context"

	"github.com/yanggu0413/yles503-react/internal/dto"
	"github.com/yanggu0413/yles503-react/internal/model"
)

// GalleryAPI 后台相簿接口 /admin/gallery
// 新增只能走 multipart 上传，没有 JSON 的 Create
type GalleryAPI interface {
	List(ctx context.Context) ([]model.GalleryItem, error)
	Upload(ctx context.Context, title string, file *dto.UploadFile) (*model.GalleryItem, error)
	Update(ctx context.Context, id int64, req *dto.GalleryItemRequest) (*model.GalleryItem, error)
	Delete(ctx context.Context, id int64) error
}

type galleryAPI struct {
	crud crud[model.GalleryItem]
}

func (a *galleryAPI) List(ctx context.Context) ([]model.GalleryItem, error) {
	return a.crud.list(ctx)
}

// Upload POST /admin/gallery/upload，title 为空时使用文件名
func (a *galleryAPI) Upload(ctx context.Context, title string, file *dto.UploadFile) (*model.GalleryItem, error) {
	if title == "" {
		title = file.Name
	}
	var out model.GalleryItem
	err := a.crud.t.postMultipart(ctx, a.crud.path+"/upload", map[string]string{"title": title}, file, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *galleryAPI) Update(ctx context.Context, id int64, req *dto.GalleryItemRequest) (*model.GalleryItem, error) {
	return a.crud.update(ctx, id, req)
}

func (a *galleryAPI) Delete(ctx context.Context, id int64) error {
	return a.crud.remove(ctx, id)
}
