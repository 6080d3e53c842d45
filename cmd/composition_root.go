package cmd

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	httpserver "aboshop/internal/adapters/in/http"
	"aboshop/internal/adapters/out/draftmem"
	"aboshop/internal/adapters/out/geodir"
	"aboshop/internal/adapters/out/notify"
	"aboshop/internal/adapters/out/postgres"
	"aboshop/internal/core/application/usecases/commands"
	"aboshop/internal/core/application/usecases/queries"
	"aboshop/internal/core/domain/services"
	"aboshop/internal/core/ports"
	"aboshop/internal/jobs"

	"gorm.io/gorm"
)

const defaultDraftTTL = 30 * time.Minute

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	drafts     ports.DraftRegistry
	engine     services.PricingEngine
	geo        ports.GeoDirectory
	sender     ports.ConfirmationSender
	logger     *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	engine := services.NewPricingEngine()

	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		drafts:     draftmem.NewInMemoryDraftRegistry(),
		engine:     engine,
		geo:        geodir.NewStaticDirectory(engine),
		sender:     createConfirmationSender(config, logger),
		logger:     logger,
	}
}

// createConfirmationSender picks the SES sender when configured, the
// log-only sender otherwise.
func createConfirmationSender(config Config, logger *slog.Logger) ports.ConfirmationSender {
	if config.ConfirmationMode == "ses" {
		client, err := notify.NewSESClient(context.Background(), config.SESRegion)
		if err != nil {
			logger.Warn("SES unavailable, falling back to log confirmation sender", "error", err)
			return notify.NewLogConfirmationSender(logger)
		}
		return notify.NewSESConfirmationSender(client, config.SESSenderAddress)
	}
	return notify.NewLogConfirmationSender(logger)
}

// DraftTTL returns the configured idle lifetime of checkout drafts.
func (c *CompositionRoot) DraftTTL() time.Duration {
	if minutes, err := strconv.Atoi(c.config.DraftTTLMinutes); err == nil && minutes > 0 {
		return time.Duration(minutes) * time.Minute
	}
	return defaultDraftTTL
}

func (c *CompositionRoot) CreateSubmitDeliveryAddressCommandHandler() commands.SubmitDeliveryAddressCommandHandler {
	return commands.NewSubmitDeliveryAddressCommandHandler(c.drafts, c.geo)
}

func (c *CompositionRoot) CreateConfigureSubscriptionCommandHandler() commands.ConfigureSubscriptionCommandHandler {
	return commands.NewConfigureSubscriptionCommandHandler(c.drafts, c.engine)
}

func (c *CompositionRoot) CreateLoginCommandHandler() commands.LoginCommandHandler {
	var f commands.CustomerUoWFactory = FuncCustomerUoWFactory(func() commands.CustomerUoW {
		return c.uowFactory.Create()
	})
	return commands.NewLoginCommandHandler(c.drafts, f)
}

func (c *CompositionRoot) CreateRegisterCommandHandler() commands.RegisterCommandHandler {
	var f commands.CustomerUoWFactory = FuncCustomerUoWFactory(func() commands.CustomerUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRegisterCommandHandler(c.drafts, f)
}

func (c *CompositionRoot) CreateSetBillingAddressCommandHandler() commands.SetBillingAddressCommandHandler {
	return commands.NewSetBillingAddressCommandHandler(c.drafts)
}

func (c *CompositionRoot) CreateSelectPaymentCommandHandler() commands.SelectPaymentCommandHandler {
	return commands.NewSelectPaymentCommandHandler(c.drafts)
}

func (c *CompositionRoot) CreatePlaceOrderCommandHandler() commands.PlaceOrderCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewPlaceOrderCommandHandler(c.drafts, f, c.sender, c.logger)
}

func (c *CompositionRoot) CreateNavigateCommandHandler() commands.NavigateCommandHandler {
	return commands.NewNavigateCommandHandler(c.drafts)
}

func (c *CompositionRoot) CreateResetCheckoutCommandHandler() commands.ResetCheckoutCommandHandler {
	return commands.NewResetCheckoutCommandHandler(c.drafts)
}

func (c *CompositionRoot) CreateGetSubscriptionQueryHandler() queries.GetSubscriptionQueryHandler {
	return queries.NewGetSubscriptionQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCustomerSubscriptionsQueryHandler() queries.GetCustomerSubscriptionsQueryHandler {
	return queries.NewGetCustomerSubscriptionsQueryHandler(c.gormDB)
}

// CreateServer wires every handler into the HTTP server.
func (c *CompositionRoot) CreateServer() *httpserver.Server {
	return httpserver.NewServer(
		c.drafts,
		c.CreateSubmitDeliveryAddressCommandHandler(),
		c.CreateConfigureSubscriptionCommandHandler(),
		c.CreateLoginCommandHandler(),
		c.CreateRegisterCommandHandler(),
		c.CreateSetBillingAddressCommandHandler(),
		c.CreateSelectPaymentCommandHandler(),
		c.CreatePlaceOrderCommandHandler(),
		c.CreateNavigateCommandHandler(),
		c.CreateResetCheckoutCommandHandler(),
		c.CreateGetSubscriptionQueryHandler(),
		c.CreateGetCustomerSubscriptionsQueryHandler(),
	)
}

// CreateJobManager wires the background jobs.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.drafts, c.DraftTTL(), c.logger)
}

type FuncCustomerUoWFactory func() commands.CustomerUoW

func (f FuncCustomerUoWFactory) Create() commands.CustomerUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
