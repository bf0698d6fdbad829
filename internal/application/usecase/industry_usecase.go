package usecase

import (
	"context"

	"github.com/jhoicas/biztime-api/internal/application/dto"
	"github.com/jhoicas/biztime-api/internal/domain"
	"github.com/jhoicas/biztime-api/internal/domain/entity"
)

// IndustryUseCase casos de uso CRUD para industrias (inmutables: sin update).
type IndustryUseCase struct {
	repos Repositories
	tx    TxRunner
}

// NewIndustryUseCase construye el caso de uso.
func NewIndustryUseCase(repos Repositories, tx TxRunner) *IndustryUseCase {
	return &IndustryUseCase{repos: repos, tx: tx}
}

// List devuelve todas las industrias.
func (uc *IndustryUseCase) List(ctx context.Context) (*dto.IndustryListResponse, error) {
	list, err := uc.repos.Industries.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.IndustryResponse, 0, len(list))
	for _, ind := range list {
		items = append(items, toIndustryResponse(ind))
	}
	return &dto.IndustryListResponse{Industries: items}, nil
}

// Create crea una industria con el código indicado por el cliente.
func (uc *IndustryUseCase) Create(ctx context.Context, in dto.CreateIndustryRequest) (*dto.IndustryResponse, error) {
	if in.Code == "" || in.Industry == "" {
		return nil, domain.Invalid("code e industry son requeridos")
	}
	industry := &entity.Industry{Code: in.Code, Industry: in.Industry}
	if err := uc.repos.Industries.Create(ctx, industry); err != nil {
		return nil, err
	}
	out := toIndustryResponse(industry)
	return &out, nil
}

// Get obtiene una industria por código.
func (uc *IndustryUseCase) Get(ctx context.Context, code string) (*dto.IndustryResponse, error) {
	industry, err := uc.repos.Industries.GetByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if industry == nil {
		return nil, domain.NewNotFound("industria", code)
	}
	out := toIndustryResponse(industry)
	return &out, nil
}

// Delete elimina la industria; sus asociaciones caen en cascada.
func (uc *IndustryUseCase) Delete(ctx context.Context, code string) error {
	return uc.tx.Run(ctx, func(r Repositories) error {
		industry, err := r.Industries.GetByCode(ctx, code)
		if err != nil {
			return err
		}
		if industry == nil {
			return domain.NewNotFound("industria", code)
		}
		return r.Industries.Delete(ctx, code)
	})
}

func toIndustryResponse(i *entity.Industry) dto.IndustryResponse {
	return dto.IndustryResponse{Code: i.Code, Industry: i.Industry}
}
