package customer

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"bakery_frontdesk/pkg/database"
	"bakery_frontdesk/pkg/models"
	"bakery_frontdesk/pkg/session"
	"bakery_frontdesk/pkg/upstream"
)

func sagaDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&models.PendingOrder{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func sagaRouter(user *session.CurrentUser) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/payments/return", func(c *gin.Context) {
		c.Set("currentUser", user)
		c.Set("token", "customer-token")
	}, PaymentReturn)
	return r
}

// buyStub counts /buyproduct POSTs and answers with the canned handler.
func buyStub(t *testing.T, calls *int32, handler http.HandlerFunc) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/buyproduct" || r.Method != http.MethodPost {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		atomic.AddInt32(calls, 1)
		handler(w, r)
	}))
}

// A second visit to the return URL must replay the stored outcome without
// calling the upstream again.
func TestPaymentReturnIdempotent(t *testing.T) {
	database.DB = sagaDB(t)

	var buyCalls int32
	srv := buyStub(t, &buyCalls, func(w http.ResponseWriter, r *http.Request) {
		var req upstream.SaleRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		if req.TxRef != "tx-ret-1" || req.Quantity != 2 || req.TotalPrice != 100 {
			t.Errorf("finalize did not use the pinned record, got %+v", req)
		}
		json.NewEncoder(w).Encode(upstream.SaleResponse{
			Message: "Purchase successful",
			Status:  models.StockAvailable,
			Order:   &models.Order{ID: 55},
		})
	})
	defer srv.Close()
	upstream.Default = upstream.New(srv.URL, srv.URL, 5*time.Second)

	pending := models.PendingOrder{
		TxRef:     "tx-ret-1",
		UserID:    9,
		ProductID: 3,
		Quantity:  2,
		UnitPrice: 50,
		Total:     100,
		State:     models.PendingOrderInitiated,
	}
	if err := database.DB.Create(&pending).Error; err != nil {
		t.Fatalf("seed pending order: %v", err)
	}

	router := sagaRouter(&session.CurrentUser{ID: 9, Name: "Almaz", Role: models.RoleCustomer})

	first := httptest.NewRecorder()
	router.ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/payments/return?tx_ref=tx-ret-1", nil))
	if first.Code != http.StatusOK {
		t.Fatalf("first return status = %d, body %s", first.Code, first.Body.String())
	}
	if got := atomic.LoadInt32(&buyCalls); got != 1 {
		t.Fatalf("buyproduct calls after first return = %d, want 1", got)
	}

	var stored models.PendingOrder
	if err := database.DB.Where("tx_ref = ?", "tx-ret-1").First(&stored).Error; err != nil {
		t.Fatalf("reload pending order: %v", err)
	}
	if stored.State != models.PendingOrderFinalized {
		t.Errorf("state = %s, want FINALIZED", stored.State)
	}
	if stored.OrderID != 55 {
		t.Errorf("order id = %d, want 55", stored.OrderID)
	}

	second := httptest.NewRecorder()
	router.ServeHTTP(second, httptest.NewRequest(http.MethodGet, "/payments/return?tx_ref=tx-ret-1", nil))
	if second.Code != http.StatusOK {
		t.Fatalf("second return status = %d, body %s", second.Code, second.Body.String())
	}
	if got := atomic.LoadInt32(&buyCalls); got != 1 {
		t.Errorf("buyproduct calls after replay = %d, want still 1", got)
	}
	if !strings.Contains(second.Body.String(), "already finalized") {
		t.Errorf("replay body = %s, want the stored outcome", second.Body.String())
	}
}

// A finalize rejected for stock must surface the remaining count and mark the
// record FAILED.
func TestPaymentReturnInsufficientStock(t *testing.T) {
	database.DB = sagaDB(t)

	var buyCalls int32
	srv := buyStub(t, &buyCalls, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"message":   "Insufficient stock available",
			"remaining": 3,
		})
	})
	defer srv.Close()
	upstream.Default = upstream.New(srv.URL, srv.URL, 5*time.Second)

	pending := models.PendingOrder{
		TxRef:     "tx-ret-2",
		UserID:    9,
		ProductID: 3,
		Quantity:  5,
		UnitPrice: 50,
		Total:     250,
		State:     models.PendingOrderInitiated,
	}
	if err := database.DB.Create(&pending).Error; err != nil {
		t.Fatalf("seed pending order: %v", err)
	}

	router := sagaRouter(&session.CurrentUser{ID: 9, Name: "Almaz", Role: models.RoleCustomer})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/payments/return?tx_ref=tx-ret-2", nil))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400, body %s", w.Code, w.Body.String())
	}

	body := w.Body.String()
	if !strings.Contains(body, "3") {
		t.Errorf("body = %s, want the remaining count surfaced", body)
	}
	if !strings.Contains(body, string(upstream.CodeInsufficientStock)) {
		t.Errorf("body = %s, want code %s", body, upstream.CodeInsufficientStock)
	}

	var stored models.PendingOrder
	if err := database.DB.Where("tx_ref = ?", "tx-ret-2").First(&stored).Error; err != nil {
		t.Fatalf("reload pending order: %v", err)
	}
	if stored.State != models.PendingOrderFailed {
		t.Errorf("state = %s, want FAILED", stored.State)
	}
	if stored.FailNote == "" {
		t.Error("fail note should record the cause")
	}
}

func TestPaymentReturnWrongUser(t *testing.T) {
	database.DB = sagaDB(t)

	var buyCalls int32
	srv := buyStub(t, &buyCalls, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	defer srv.Close()
	upstream.Default = upstream.New(srv.URL, srv.URL, 5*time.Second)

	pending := models.PendingOrder{
		TxRef:     "tx-ret-3",
		UserID:    9,
		ProductID: 3,
		Quantity:  1,
		UnitPrice: 50,
		Total:     50,
		State:     models.PendingOrderInitiated,
	}
	if err := database.DB.Create(&pending).Error; err != nil {
		t.Fatalf("seed pending order: %v", err)
	}

	router := sagaRouter(&session.CurrentUser{ID: 12, Name: "Bekele", Role: models.RoleCustomer})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/payments/return?tx_ref=tx-ret-3", nil))
	if w.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", w.Code)
	}
	if got := atomic.LoadInt32(&buyCalls); got != 0 {
		t.Errorf("buyproduct calls = %d, want 0", got)
	}
}

func TestPaymentReturnUnknownTxRef(t *testing.T) {
	database.DB = sagaDB(t)
	upstream.Default = upstream.New("http://unused.invalid", "http://unused.invalid", time.Second)

	router := sagaRouter(&session.CurrentUser{ID: 9, Name: "Almaz", Role: models.RoleCustomer})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/payments/return?tx_ref=tx-nope", nil))
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
}
