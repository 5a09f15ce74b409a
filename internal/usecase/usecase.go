package usecase

import "context"

type MenuUC interface {
	GetMenu(ctx context.Context) (GroupedMenuRes, error)
	GetCategory(ctx context.Context, category string) ([]ItemRes, error)
	CreateItem(ctx context.Context, req *CreateItemReq) (*ItemRes, error)
	UpdateItem(ctx context.Context, req *UpdateItemReq) (*ItemRes, error)
	DeleteItem(ctx context.Context, category, id string) error
	UploadImage(ctx context.Context, req *UploadImageReq) (*UploadImageRes, error)
}
