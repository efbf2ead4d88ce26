package api

import (
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humago"
	"github.com/gofrs/uuid/v5"
	"github.com/sirupsen/logrus"

	"github.com/jainarula-tz/rideledger/internal/handlers/v1/account"
	"github.com/jainarula-tz/rideledger/internal/handlers/v1/charge"
	"github.com/jainarula-tz/rideledger/internal/handlers/v1/invoice"
	"github.com/jainarula-tz/rideledger/internal/handlers/v1/payment"
	"github.com/jainarula-tz/rideledger/internal/handlers/v1/status"
	"github.com/jainarula-tz/rideledger/internal/logging"
	"github.com/jainarula-tz/rideledger/internal/operator"
	"github.com/jainarula-tz/rideledger/internal/service"
)

type Rest struct {
	Logger   *logrus.Logger
	Port     string
	Service  *service.Service
	Operator *operator.OperatorDelegator
}

func (r *Rest) Serve() {
	mux := http.NewServeMux()

	statusHandler := status.NewHandler()
	mux.HandleFunc("/status", logging.LoggingWrapper("Status", r.Logger, statusHandler.Handler))

	humaAPI := humago.New(mux, huma.DefaultConfig("rideledger", "1.0.0"))
	humaAPI.UseMiddleware(r.requestLogging)

	account.NewGetAccountHandler(r.Service.Account).Register(humaAPI)
	account.NewSearchAccountsHandler(r.Service.Account).Register(humaAPI)
	account.NewLedgerViewHandler(r.Service.Account).Register(humaAPI)
	charge.NewRecordChargeHandler(r.Operator).Register(humaAPI)
	payment.NewRecordPaymentHandler(r.Operator).Register(humaAPI)
	invoice.NewListInvoicesHandler(r.Service.Invoice).Register(humaAPI)
	invoice.NewGetInvoiceHandler(r.Service.Invoice).Register(humaAPI)
	invoice.NewGenerateInvoiceHandler(r.Operator).Register(humaAPI)

	server := http.Server{
		Addr:              ":" + r.Port,
		Handler:           mux,
		ReadTimeout:       time.Duration(30) * time.Second,
		WriteTimeout:      time.Duration(30) * time.Second,
		IdleTimeout:       time.Duration(10) * time.Second,
		ReadHeaderTimeout: time.Duration(10) * time.Second,
	}

	r.Logger.Info("HttpServer.Serve.listening")
	err := server.ListenAndServe()
	if err != nil {
		r.Logger.WithError(err).Error("HttpServer.Serve.listen error")
	}
	r.Logger.Info("HttpServer.Serve.shutting down")
}

// requestLogging gives every API request its own LogData and request ID and
// emits one completion line with the accumulated timings.
func (r *Rest) requestLogging(ctx huma.Context, next func(huma.Context)) {
	logData := logging.NewLogData(r.Logger)
	logData.AddData("requestID", uuid.Must(uuid.NewV4()).String())
	logData.AddData("path", ctx.URL().Path)

	ctx = huma.WithContext(ctx, logging.WithLogData(ctx.Context(), logData))

	endTimer := logData.AddTiming("duration")
	next(ctx)
	endTimer()

	logData.Log().Infof("Handler.%v.Complete", ctx.Operation().OperationID)
}
