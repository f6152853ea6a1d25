package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"desdeaca/builders"
	"desdeaca/dto"
	"desdeaca/errors"
	"desdeaca/models"
	"desdeaca/services/logger"
	"desdeaca/validator"

	"github.com/olahol/melody"
	"gorm.io/gorm"
)

// DateLayout es el formato de fecha de la API (check_in/check_out).
const DateLayout = "2006-01-02"

type InquiryService struct {
	db     *gorm.DB
	melody *melody.Melody
	logger logger.Logger
}

type InquiryServiceOptions struct {
	DB     *gorm.DB
	Melody *melody.Melody
	Logger logger.Logger
}

func NewInquiryService(opts InquiryServiceOptions) *InquiryService {
	l := opts.Logger
	if l == nil {
		l = logger.NewDefaultLogger(logger.InfoLevel)
	}
	return &InquiryService{db: opts.DB, melody: opts.Melody, logger: l}
}

// SendWhatsApp resuelve POST /api/whatsapp/send: carga propiedad y
// dueño, valida el número, arma el link según el tipo de contacto y
// para las consultas detalladas persiste el rastro best-effort. Si el
// insert falla el link igual se devuelve; guardar la consulta nunca
// bloquea el contacto.
func (s *InquiryService) SendWhatsApp(ctx context.Context, req *dto.WhatsAppSendRequest) (*dto.WhatsAppSendResponse, error) {
	var prop models.Property
	err := s.db.WithContext(ctx).
		Preload("Owner").
		Where("id = ? AND status = ?", req.PropertyID, models.StatusActive).
		First(&prop).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrPropertyNotFound
		}
		return nil, err
	}

	contactType := req.Type
	if contactType == "" {
		contactType = dto.ContactTypeDetailed
	}

	resp := &dto.WhatsAppSendResponse{
		ContactType: contactType,
		Property: dto.WhatsAppPropertyInfo{
			ID:        prop.ID,
			Title:     prop.Title,
			OwnerName: prop.Owner.Name,
		},
	}

	ownerPhone := prop.Owner.ContactNumber()

	if contactType == dto.ContactTypeQuick {
		link, err := QuickContactLink(ownerPhone, prop.Title)
		if err != nil {
			return nil, err
		}
		resp.WhatsappURL = link
		return resp, nil
	}

	if req.CheckIn == "" || req.CheckOut == "" {
		return nil, errors.NewAppError(errors.ErrCodeRequiredField,
			"Fechas de entrada y salida requeridas para consulta detallada", nil)
	}

	checkIn, err := time.Parse(DateLayout, req.CheckIn)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeInvalidFormat, "Fecha de entrada inválida, usar AAAA-MM-DD", err)
	}
	checkOut, err := time.Parse(DateLayout, req.CheckOut)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeInvalidFormat, "Fecha de salida inválida, usar AAAA-MM-DD", err)
	}

	if err := validator.ValidateStayDates(checkIn, checkOut, time.Now()); err != nil {
		return nil, err
	}

	guests := req.Guests
	if guests < 1 {
		guests = 1
	}
	if guests > prop.Capacity {
		return nil, errors.NewAppError(errors.ErrCodeInvalidGuests,
			fmt.Sprintf("La propiedad admite hasta %d huéspedes", prop.Capacity), nil)
	}

	link, err := DetailedContactLink(ContactParams{
		OwnerPhone:    ownerPhone,
		PropertyTitle: prop.Title,
		CheckIn:       checkIn,
		CheckOut:      checkOut,
		GuestName:     req.GuestName,
		Guests:        guests,
	})
	if err != nil {
		return nil, err
	}
	resp.WhatsappURL = link

	// Rastro best-effort: un fallo acá se loguea y listo
	inquiry := builders.NewInquiryBuilder().
		ForProperty(prop.ID).
		WithGuest(req.GuestName, req.GuestPhone, req.GuestEmail).
		WithStay(checkIn, checkOut, guests).
		WithMessage(req.Message).
		Build()
	if err := s.db.WithContext(ctx).Create(inquiry).Error; err != nil {
		s.logger.Error("no se pudo guardar la consulta de la propiedad %d: %v", prop.ID, err)
	} else {
		resp.InquiryID = &inquiry.ID
		s.broadcastInquiry(inquiry, prop.Title)
	}

	return resp, nil
}

// broadcastInquiry avisa por websocket a los paneles conectados.
func (s *InquiryService) broadcastInquiry(inq *models.Inquiry, propertyTitle string) {
	if s.melody == nil {
		return
	}
	payload, err := json.Marshal(map[string]interface{}{
		"event":          "inquiry.created",
		"inquiry_id":     inq.ID,
		"property_id":    inq.PropertyID,
		"property_title": propertyTitle,
		"guest_name":     inq.GuestName,
		"check_in":       inq.CheckIn.Format(DateLayout),
		"check_out":      inq.CheckOut.Format(DateLayout),
	})
	if err != nil {
		return
	}
	if err := s.melody.Broadcast(payload); err != nil {
		s.logger.Debug("broadcast de consulta falló: %v", err)
	}
}

// CreateReservation es la superficie legacy: alta directa de una
// consulta con todos los campos obligatorios.
func (s *InquiryService) CreateReservation(ctx context.Context, req *dto.ReservationRequest) (uint, error) {
	if req.PropertyID == 0 || req.Name == "" || req.Email == "" || req.CheckIn == "" || req.CheckOut == "" || req.Guests == 0 {
		return 0, errors.NewAppError(errors.ErrCodeRequiredField, "Faltan campos obligatorios", nil)
	}
	if err := validator.ValidateEmail(req.Email); err != nil {
		return 0, err
	}

	checkIn, err := time.Parse(DateLayout, req.CheckIn)
	if err != nil {
		return 0, errors.NewAppError(errors.ErrCodeInvalidFormat, "Fecha de entrada inválida, usar AAAA-MM-DD", err)
	}
	checkOut, err := time.Parse(DateLayout, req.CheckOut)
	if err != nil {
		return 0, errors.NewAppError(errors.ErrCodeInvalidFormat, "Fecha de salida inválida, usar AAAA-MM-DD", err)
	}
	if !checkOut.After(checkIn) {
		return 0, errors.NewAppError(errors.ErrCodeInvalidDates, "La fecha de salida debe ser posterior a la fecha de entrada", nil)
	}

	var prop models.Property
	if err := s.db.WithContext(ctx).First(&prop, req.PropertyID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return 0, errors.ErrPropertyNotFound
		}
		return 0, err
	}
	if req.Guests > prop.Capacity {
		return 0, errors.NewAppError(errors.ErrCodeInvalidGuests,
			fmt.Sprintf("La propiedad admite hasta %d huéspedes", prop.Capacity), nil)
	}

	inquiry := builders.NewInquiryBuilder().
		ForProperty(req.PropertyID).
		WithGuest(req.Name, req.Phone, req.Email).
		WithStay(checkIn, checkOut, req.Guests).
		WithMessage(req.Message).
		Build()
	if err := s.db.WithContext(ctx).Create(inquiry).Error; err != nil {
		return 0, err
	}

	s.broadcastInquiry(inquiry, prop.Title)
	return inquiry.ID, nil
}

// ListReservations devuelve todas las consultas con título y zona de
// la propiedad.
func (s *InquiryService) ListReservations(ctx context.Context) ([]dto.ReservationResponse, error) {
	var inquiries []models.Inquiry
	err := s.db.WithContext(ctx).
		Preload("Property").
		Order("created_at DESC, id DESC").
		Find(&inquiries).Error
	if err != nil {
		return nil, err
	}

	out := make([]dto.ReservationResponse, 0, len(inquiries))
	for _, inq := range inquiries {
		out = append(out, dto.ReservationResponse{
			ID:            inq.ID,
			PropertyID:    inq.PropertyID,
			PropertyTitle: inq.Property.Title,
			PropertyArea:  inq.Property.Area,
			Name:          inq.GuestName,
			Email:         inq.GuestEmail,
			Phone:         inq.GuestPhone,
			CheckIn:       inq.CheckIn.Format(DateLayout),
			CheckOut:      inq.CheckOut.Format(DateLayout),
			Guests:        inq.Guests,
			Status:        inq.Status,
		})
	}
	return out, nil
}
