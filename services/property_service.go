package services

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"desdeaca/dto"
	"desdeaca/errors"
	"desdeaca/models"
	"desdeaca/services/logger"
	"desdeaca/utils"
	"desdeaca/validator"

	"github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const (
	DefaultPageLimit = 20
	MaxPageLimit     = 100
)

// Descuentos aplicados al derivar precios semanales y mensuales
// cuando el dueño no los carga.
const (
	weeklyDiscount  = 0.9
	monthlyDiscount = 0.8
)

type PropertyService struct {
	db     *gorm.DB
	rdb    *redis.Client
	logger logger.Logger
}

type PropertyServiceOptions struct {
	DB     *gorm.DB
	Redis  *redis.Client
	Logger logger.Logger
}

func NewPropertyService(opts PropertyServiceOptions) *PropertyService {
	l := opts.Logger
	if l == nil {
		l = logger.NewDefaultLogger(logger.InfoLevel)
	}
	return &PropertyService{db: opts.DB, rdb: opts.Redis, logger: l}
}

// ParseSearchFilters lee los filtros del query string. Un valor
// numérico malformado es error de validación, nunca se castea en
// silencio a cero.
func ParseSearchFilters(q url.Values) (*dto.SearchFilters, error) {
	f := &dto.SearchFilters{
		Area:         q.Get("area"),
		PropertyType: q.Get("property_type"),
		Search:       strings.TrimSpace(q.Get("search")),
		Status:       q.Get("status"),
		Page:         1,
		Limit:        DefaultPageLimit,
	}

	if f.Status == "" {
		f.Status = models.StatusActive
	}
	// Los clientes viejos todavía mandan los estados en castellano
	status, err := models.MapLegacyStatus(f.Status)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeInvalidStatus, fmt.Sprintf("estado inválido: %q", f.Status), nil)
	}
	f.Status = status
	if f.Area != "" && !models.ValidArea(f.Area) {
		return nil, errors.NewAppError(errors.ErrCodeInvalidArea, fmt.Sprintf("zona inválida: %q", f.Area), nil)
	}
	if f.PropertyType != "" && !models.ValidPropertyType(f.PropertyType) {
		return nil, errors.NewAppError(errors.ErrCodeInvalidType, fmt.Sprintf("tipo de propiedad inválido: %q", f.PropertyType), nil)
	}

	if raw := q.Get("min_price"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, errors.NewAppError(errors.ErrCodeInvalidFormat, "min_price debe ser numérico", err)
		}
		f.MinPrice = &v
	}
	if raw := q.Get("max_price"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, errors.NewAppError(errors.ErrCodeInvalidFormat, "max_price debe ser numérico", err)
		}
		f.MaxPrice = &v
	}
	if raw := q.Get("capacity"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			return nil, errors.NewAppError(errors.ErrCodeInvalidFormat, "capacity debe ser numérico", err)
		}
		f.Capacity = &v
	}
	if raw := q.Get("page"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 1 {
			return nil, errors.NewAppError(errors.ErrCodeInvalidFormat, "page debe ser un entero mayor o igual a 1", err)
		}
		f.Page = v
	}
	if raw := q.Get("limit"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 1 {
			return nil, errors.NewAppError(errors.ErrCodeInvalidFormat, "limit debe ser un entero mayor o igual a 1", err)
		}
		if v > MaxPageLimit {
			v = MaxPageLimit
		}
		f.Limit = v
	}

	return f, nil
}

// applyFilters agrega el predicado completo a una consulta. La misma
// función arma el count y la página, así los dos usan exactamente los
// mismos parámetros.
func applyFilters(db *gorm.DB, f *dto.SearchFilters) *gorm.DB {
	db = db.Where("status = ?", f.Status)
	if f.Area != "" {
		db = db.Where("area = ?", f.Area)
	}
	if f.PropertyType != "" {
		db = db.Where("property_type = ?", f.PropertyType)
	}
	if f.MinPrice != nil {
		db = db.Where("price_daily >= ?", *f.MinPrice)
	}
	if f.MaxPrice != nil {
		db = db.Where("price_daily <= ?", *f.MaxPrice)
	}
	if f.Capacity != nil {
		db = db.Where("capacity >= ?", *f.Capacity)
	}
	if f.Search != "" {
		like := "%" + f.Search + "%"
		db = db.Where("title ILIKE ? OR description ILIKE ?", like, like)
	}
	return db
}

type listingPage struct {
	Data  []dto.PropertyResponse `json:"data"`
	Total int64                  `json:"total"`
}

// List ejecuta el listado filtrado con paginación. El total se calcula
// con el mismo predicado que la página. Orden: más nuevas primero, con
// id como desempate determinístico.
func (s *PropertyService) List(ctx context.Context, f *dto.SearchFilters) ([]dto.PropertyResponse, int64, error) {
	cacheKey := ListingCacheKey(f)
	if s.rdb != nil {
		var cached listingPage
		if err := GetFromRedis(ctx, s.rdb, cacheKey, &cached); err == nil && cached.Data != nil {
			return cached.Data, cached.Total, nil
		}
	}

	var total int64
	if err := applyFilters(s.db.WithContext(ctx).Model(&models.Property{}), f).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var props []models.Property
	err := applyFilters(s.db.WithContext(ctx).Model(&models.Property{}), f).
		Preload("Owner").
		Order("created_at DESC, id DESC").
		Limit(f.Limit).
		Offset((f.Page - 1) * f.Limit).
		Find(&props).Error
	if err != nil {
		return nil, 0, err
	}

	out := make([]dto.PropertyResponse, 0, len(props))
	for i := range props {
		out = append(out, ToPropertyResponse(&props[i]))
	}

	if s.rdb != nil {
		if err := SetToRedis(ctx, s.rdb, cacheKey, listingPage{Data: out, Total: total}, ListingCacheTTL); err != nil {
			s.logger.Error("no se pudo cachear el listado: %v", err)
		}
	}

	return out, total, nil
}

// GetByID devuelve la propiedad con su dueño, o ErrPropertyNotFound.
func (s *PropertyService) GetByID(ctx context.Context, id uint) (*models.Property, error) {
	var prop models.Property
	err := s.db.WithContext(ctx).Preload("Owner").First(&prop, id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrPropertyNotFound
		}
		return nil, err
	}
	return &prop, nil
}

// DerivePrices completa los precios semanal y mensual cuando faltan:
// semanal = diario×7×0.9, mensual = diario×30×0.8.
func DerivePrices(daily, weekly, monthly float64) (float64, float64) {
	if weekly <= 0 {
		weekly = daily * 7 * weeklyDiscount
	}
	if monthly <= 0 {
		monthly = daily * 30 * monthlyDiscount
	}
	return weekly, monthly
}

// Create valida el alta completa (todos los problemas juntos), chequea
// que el dueño exista y sea de tipo owner, deriva los precios que
// falten y crea la fila con estado pending_approval pase lo que pase.
func (s *PropertyService) Create(ctx context.Context, req *dto.PropertyRequest) (*models.Property, []string, error) {
	// Compatibilidad: amenities como texto JSON o lista por comas
	if len(req.Amenities) == 0 && req.AmenitiesRaw != "" {
		req.Amenities = utils.ParseStringList(req.AmenitiesRaw)
	}

	if errs := validator.ValidateProperty(req); len(errs) > 0 {
		return nil, errs, nil
	}

	var owner models.User
	if err := s.db.WithContext(ctx).First(&owner, req.OwnerID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, []string{"el owner_id no corresponde a un usuario existente"}, nil
		}
		return nil, nil, err
	}
	if owner.UserType != models.UserTypeOwner {
		return nil, []string{"el usuario no es una cuenta de propietario"}, nil
	}

	weekly, monthly := DerivePrices(req.PriceDaily, req.PriceWeekly, req.PriceMonthly)

	prop := models.Property{
		OwnerID:      req.OwnerID,
		Title:        req.Title,
		Description:  req.Description,
		PropertyType: req.PropertyType,
		Area:         req.Area,
		Address:      req.Address,
		Coordinates:  req.Coordinates,
		Images:       pq.StringArray(utils.EnsureStringList(req.Images)),
		Amenities:    pq.StringArray(utils.EnsureStringList(req.Amenities)),
		Rules:        pq.StringArray(utils.EnsureStringList(req.Rules)),
		Capacity:     req.Capacity,
		Bedrooms:     req.Bedrooms,
		Bathrooms:    req.Bathrooms,
		PriceDaily:   req.PriceDaily,
		PriceWeekly:  weekly,
		PriceMonthly: monthly,
		Status:       models.StatusPendingApproval,
	}
	if err := s.db.WithContext(ctx).Create(&prop).Error; err != nil {
		return nil, nil, err
	}

	prop.Owner = owner
	s.invalidateCache(ctx)
	return &prop, nil, nil
}

// Update aplica una actualización parcial. El chequeo de dueño y el
// update corren dentro de la misma transacción para cerrar la carrera
// check-then-act.
func (s *PropertyService) Update(ctx context.Context, id uint, req *dto.PropertyUpdateRequest) (*models.Property, error) {
	if req.OwnerID == 0 {
		return nil, errors.ErrOwnerRequired
	}

	var updated models.Property
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var prop models.Property
		if err := tx.First(&prop, id).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return errors.ErrPropertyNotFound
			}
			return err
		}
		if prop.OwnerID != req.OwnerID {
			return errors.ErrOwnerMismatch
		}

		changes := map[string]interface{}{}
		if req.Title != nil {
			changes["title"] = *req.Title
		}
		if req.Description != nil {
			changes["description"] = *req.Description
		}
		if req.PropertyType != nil {
			if !models.ValidPropertyType(*req.PropertyType) {
				return errors.NewAppError(errors.ErrCodeInvalidType, fmt.Sprintf("tipo de propiedad inválido: %q", *req.PropertyType), nil)
			}
			changes["property_type"] = *req.PropertyType
		}
		if req.Area != nil {
			if !models.ValidArea(*req.Area) {
				return errors.NewAppError(errors.ErrCodeInvalidArea, fmt.Sprintf("zona inválida: %q", *req.Area), nil)
			}
			changes["area"] = *req.Area
		}
		if req.Address != nil {
			changes["address"] = *req.Address
		}
		if len(req.Coordinates) > 0 {
			changes["coordinates"] = req.Coordinates
		}
		if req.Images != nil {
			changes["images"] = pq.StringArray(req.Images)
		}
		if req.Amenities != nil {
			changes["amenities"] = pq.StringArray(req.Amenities)
		}
		if req.Rules != nil {
			changes["rules"] = pq.StringArray(req.Rules)
		}
		if req.Capacity != nil {
			if *req.Capacity < 1 {
				return errors.NewAppError(errors.ErrCodeValidation, "la capacidad debe ser al menos 1", nil)
			}
			changes["capacity"] = *req.Capacity
		}
		if req.Bedrooms != nil {
			changes["bedrooms"] = *req.Bedrooms
		}
		if req.Bathrooms != nil {
			changes["bathrooms"] = *req.Bathrooms
		}
		if req.PriceDaily != nil {
			if *req.PriceDaily <= 0 {
				return errors.NewAppError(errors.ErrCodeValidation, "el precio diario debe ser mayor a cero", nil)
			}
			changes["price_daily"] = *req.PriceDaily
		}
		if req.PriceWeekly != nil {
			changes["price_weekly"] = *req.PriceWeekly
		}
		if req.PriceMonthly != nil {
			changes["price_monthly"] = *req.PriceMonthly
		}

		if len(changes) > 0 {
			if err := tx.Model(&prop).Updates(changes).Error; err != nil {
				return err
			}
		}

		return tx.Preload("Owner").First(&updated, id).Error
	})
	if err != nil {
		return nil, err
	}

	s.invalidateCache(ctx)
	return &updated, nil
}

// Delete borra la propiedad previa verificación de dueño, en la misma
// transacción. Las consultas asociadas caen por cascada.
func (s *PropertyService) Delete(ctx context.Context, id, ownerID uint) error {
	if ownerID == 0 {
		return errors.ErrOwnerRequired
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var prop models.Property
		if err := tx.First(&prop, id).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return errors.ErrPropertyNotFound
			}
			return err
		}
		if prop.OwnerID != ownerID {
			return errors.ErrOwnerMismatch
		}
		return tx.Delete(&prop).Error
	})
	if err != nil {
		return err
	}

	s.invalidateCache(ctx)
	return nil
}

// Approve pasa una propiedad pendiente a activa. Cero filas afectadas
// se reporta como no-encontrado, nunca como éxito silencioso; el
// reintento sobre un id inexistente sigue dando 404.
func (s *PropertyService) Approve(ctx context.Context, id uint) error {
	res := s.db.WithContext(ctx).
		Model(&models.Property{}).
		Where("id = ?", id).
		Update("status", models.StatusActive)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return errors.ErrPropertyNotFound
	}

	s.invalidateCache(ctx)
	return nil
}

func (s *PropertyService) invalidateCache(ctx context.Context) {
	if err := InvalidateListingCache(ctx, s.rdb); err != nil {
		s.logger.Error("no se pudo invalidar el cache de listado: %v", err)
	}
}

// ToPropertyResponse normaliza una fila a la forma de salida: precios
// agrupados, dueño aplanado, listas nunca nulas y precios opcionales
// en nil cuando no están cargados.
func ToPropertyResponse(p *models.Property) dto.PropertyResponse {
	var weekly, monthly *float64
	if p.PriceWeekly > 0 {
		w := p.PriceWeekly
		weekly = &w
	}
	if p.PriceMonthly > 0 {
		m := p.PriceMonthly
		monthly = &m
	}

	return dto.PropertyResponse{
		ID:           p.ID,
		Title:        p.Title,
		Description:  p.Description,
		PropertyType: p.PropertyType,
		Area:         p.Area,
		Address:      p.Address,
		Coordinates:  p.Coordinates,
		Images:       utils.EnsureStringList(p.Images),
		Amenities:    utils.EnsureStringList(p.Amenities),
		Rules:        utils.EnsureStringList(p.Rules),
		Capacity:     p.Capacity,
		Bedrooms:     p.Bedrooms,
		Bathrooms:    p.Bathrooms,
		Price: dto.PriceResponse{
			Daily:   p.PriceDaily,
			Weekly:  weekly,
			Monthly: monthly,
		},
		Status: p.Status,
		Owner: dto.OwnerResponse{
			ID:       p.Owner.ID,
			Name:     p.Owner.Name,
			Phone:    p.Owner.ContactNumber(),
			Verified: p.Owner.Verified,
		},
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}
