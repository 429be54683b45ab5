package usecase

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/tienda-tech/inventario/internal/application/dto"
	"github.com/tienda-tech/inventario/internal/domain"
	"github.com/tienda-tech/inventario/internal/domain/entity"
	"github.com/tienda-tech/inventario/internal/domain/repository"
)

// CustomerUseCase registro y listado de clientes (tabla secundaria, fuera del
// contrato del inventario).
type CustomerUseCase struct {
	repo repository.CustomerRepository
}

// NewCustomerUseCase construye el caso de uso.
func NewCustomerUseCase(repo repository.CustomerRepository) *CustomerUseCase {
	return &CustomerUseCase{repo: repo}
}

// Register crea un cliente con id generado. El email único lo garantiza la BD.
func (uc *CustomerUseCase) Register(in dto.CreateCustomerRequest) (*dto.CustomerResponse, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, fmt.Errorf("%w: el nombre no puede estar vacío", domain.ErrValidation)
	}
	customer := &entity.Customer{
		ID:           uuid.New().String(),
		Name:         in.Name,
		Email:        in.Email,
		Phone:        in.Phone,
		RegisteredAt: time.Now(),
	}
	if err := uc.repo.Create(customer); err != nil {
		return nil, err
	}
	out := dto.ToCustomerResponse(customer)
	return &out, nil
}

// ByID devuelve el cliente o nil si no está registrado.
func (uc *CustomerUseCase) ByID(id string) (*dto.CustomerResponse, error) {
	customer, err := uc.repo.GetByID(id)
	if err != nil || customer == nil {
		return nil, err
	}
	out := dto.ToCustomerResponse(customer)
	return &out, nil
}

// List devuelve todos los clientes registrados.
func (uc *CustomerUseCase) List() ([]dto.CustomerResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.CustomerResponse, 0, len(list))
	for _, c := range list {
		items = append(items, dto.ToCustomerResponse(c))
	}
	return items, nil
}
