package services

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"strings"

	"moviematch-backend/internal/config"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// signatureLen matches the 16-character identifier length the web client
// historically used, but the value is an HMAC tag rather than a canvas hash,
// so it cannot be forged without the signing secret.
const signatureLen = 16

type DeviceService interface {
	// Register issues a new signed device ID of the form "<uuid>.<sig>".
	Register() string
	// Verify reports whether the device ID was issued by this service.
	Verify(deviceID string) bool
}

type deviceService struct {
	secret []byte
	logger *logrus.Logger
}

func NewDeviceService(cfg config.DeviceConfig, logger *logrus.Logger) DeviceService {
	return &deviceService{
		secret: []byte(cfg.SigningSecret),
		logger: logger,
	}
}

func (s *deviceService) sign(id string) string {
	mac := hmac.New(sha256.New, s.secret)
	mac.Write([]byte(id))
	sig := base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
	return sig[:signatureLen]
}

func (s *deviceService) Register() string {
	id := uuid.New().String()
	return id + "." + s.sign(id)
}

func (s *deviceService) Verify(deviceID string) bool {
	id, sig, ok := strings.Cut(deviceID, ".")
	if !ok || id == "" || len(sig) != signatureLen {
		return false
	}

	expected := s.sign(id)
	return subtle.ConstantTimeCompare([]byte(sig), []byte(expected)) == 1
}
