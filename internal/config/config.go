package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v6"
)

// Config содержит конфигурацию приложения
type Config struct {
	RunAddress  string        `env:"RUN_ADDRESS"`  // Адрес и порт запуска сервиса
	DatabaseURI string        `env:"DATABASE_URI"` // URI подключения к БД, пустой означает хранение в памяти
	LogLevel    string        `env:"LOG_LEVEL"`    // Уровень логирования
	JWTSecret   string        `env:"JWT_SECRET"`   // Секретный ключ для JWT
	JWTTokenTTL time.Duration `env:"JWT_TTL"`      // Время жизни JWT токена

	MoMo MoMoConfig

	// Ценообразование
	UnitPrice int64 `env:"UNIT_PRICE"` // Цена одной монеты в минимальных единицах, 0 отключает проверку
	MinAmount int64 `env:"MIN_AMOUNT"`
	MaxAmount int64 `env:"MAX_AMOUNT"`

	PaymentResultURL string `env:"PAYMENT_RESULT_URL"` // Страница результата после возврата из кошелька
	OrderNodeID      int64  `env:"ORDER_NODE_ID"`      // Узел генератора идентификаторов заказов

	Sweep SweepConfig
}

// MoMoConfig параметры партнера MoMo
type MoMoConfig struct {
	Endpoint     string        `env:"MOMO_ENDPOINT"`
	PartnerCode  string        `env:"MOMO_PARTNER_CODE"`
	AccessKey    string        `env:"MOMO_ACCESS_KEY"`
	SecretKey    string        `env:"MOMO_SECRET_KEY"`
	RedirectURL  string        `env:"MOMO_REDIRECT_URL"`
	IPNURL       string        `env:"MOMO_IPN_URL"`
	RequestType  string        `env:"MOMO_REQUEST_TYPE"`
	Lang         string        `env:"MOMO_LANG"`
	Timeout      time.Duration `env:"MOMO_TIMEOUT"`
	QueryRetries int           `env:"MOMO_QUERY_RETRIES"`
}

// SweepConfig параметры фоновой сверки зависших заказов
type SweepConfig struct {
	Workers    int           `env:"SWEEP_WORKERS"`
	QueueSize  int           `env:"SWEEP_QUEUE_SIZE"`
	Interval   time.Duration `env:"SWEEP_INTERVAL"`
	QueryAfter time.Duration `env:"SWEEP_QUERY_AFTER"` // Минимальный возраст заказа перед запросом статуса
	BatchSize  int           `env:"SWEEP_BATCH_SIZE"`
}

// defaults возвращает конфигурацию по умолчанию
func defaults() *Config {
	return &Config{
		RunAddress:  ":8080",
		LogLevel:    "info",
		JWTTokenTTL: 24 * time.Hour,
		MoMo: MoMoConfig{
			Endpoint:     "https://test-payment.momo.vn/v2/gateway/api",
			RequestType:  "captureWallet",
			Lang:         "vi",
			Timeout:      30 * time.Second,
			QueryRetries: 3,
		},
		UnitPrice:   200,
		MinAmount:   1000,
		MaxAmount:   50000000,
		OrderNodeID: 1,
		Sweep: SweepConfig{
			Workers:    2,
			QueueSize:  100,
			Interval:   time.Minute,
			QueryAfter: 5 * time.Minute,
			BatchSize:  100,
		},
	}
}

// Load загружает конфигурацию из переменных окружения и флагов командной строки
func Load() (*Config, error) {
	return LoadFromArgs(os.Args[1:])
}

// LoadFromArgs загружает конфигурацию из переданных аргументов и окружения
// Приоритет: env переменные > флаги > дефолтные значения
func LoadFromArgs(args []string) (*Config, error) {
	cfg := defaults()

	fs := flag.NewFlagSet("payments", flag.ContinueOnError)
	fs.StringVar(&cfg.RunAddress, "a", cfg.RunAddress, "address and port to run server")
	fs.StringVar(&cfg.DatabaseURI, "d", cfg.DatabaseURI, "database URI")
	fs.StringVar(&cfg.MoMo.Endpoint, "m", cfg.MoMo.Endpoint, "MoMo gateway base URL")
	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("failed to parse flags: %w", err)
	}

	// Переменные окружения имеют приоритет над флагами
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	if cfg.JWTSecret == "" {
		cfg.JWTSecret = "default-secret-key-change-in-production"
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	var errs []error

	required := []struct {
		value string
		name  string
	}{
		{c.MoMo.Endpoint, "MOMO_ENDPOINT"},
		{c.MoMo.PartnerCode, "MOMO_PARTNER_CODE"},
		{c.MoMo.AccessKey, "MOMO_ACCESS_KEY"},
		{c.MoMo.SecretKey, "MOMO_SECRET_KEY"},
		{c.MoMo.RedirectURL, "MOMO_REDIRECT_URL"},
		{c.MoMo.IPNURL, "MOMO_IPN_URL"},
	}
	for _, r := range required {
		if r.value == "" {
			errs = append(errs, fmt.Errorf("%s is required", r.name))
		}
	}

	if c.UnitPrice < 0 {
		errs = append(errs, errors.New("UNIT_PRICE must not be negative"))
	}
	if c.MinAmount <= 0 || c.MaxAmount < c.MinAmount {
		errs = append(errs, fmt.Errorf("invalid amount range [%d, %d]", c.MinAmount, c.MaxAmount))
	}
	if c.OrderNodeID < 0 || c.OrderNodeID > 1023 {
		errs = append(errs, errors.New("ORDER_NODE_ID must be in [0, 1023]"))
	}
	if c.Sweep.Workers <= 0 || c.Sweep.QueueSize <= 0 || c.Sweep.BatchSize <= 0 {
		errs = append(errs, errors.New("sweep workers, queue size and batch size must be positive"))
	}
	if c.Sweep.Interval <= 0 {
		errs = append(errs, errors.New("SWEEP_INTERVAL must be positive"))
	}

	return errors.Join(errs...)
}
