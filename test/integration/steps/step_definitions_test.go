// Package steps provides step definitions for the BDD integration suite.
package steps

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"reflect"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/pennyflow/backend/internal/application/usecase/budget"
	"github.com/pennyflow/backend/internal/application/usecase/category"
	"github.com/pennyflow/backend/internal/application/usecase/dashboard"
	"github.com/pennyflow/backend/internal/application/usecase/transaction"
	"github.com/pennyflow/backend/internal/application/usecase/user"
	"github.com/pennyflow/backend/internal/domain/entity"
	"github.com/pennyflow/backend/internal/infra/server/router"
	"github.com/pennyflow/backend/internal/integration/adapters"
	"github.com/pennyflow/backend/internal/integration/email"
	"github.com/pennyflow/backend/internal/integration/entrypoint/controller"
	"github.com/pennyflow/backend/internal/integration/entrypoint/middleware"
	"github.com/pennyflow/backend/internal/integration/persistence"
	"github.com/pennyflow/backend/internal/integration/persistence/model"
	"github.com/pennyflow/backend/test/integration/mock"
)

const testJWTSecret = "test-jwt-secret-key-for-testing-purposes"

var defaultExpenseCategories = []string{"Food", "Transport", "Rent", "Utilities", "Entertainment", "Shopping", "Health", "Others"}
var defaultIncomeCategories = []string{"Salary", "Bonus", "Investment", "Others"}

var tags string

func init() {
	flag.StringVar(&tags, "scenarios", "", "tags to run")
}

func TestFeatures(t *testing.T) {
	flag.Parse()

	suite := godog.TestSuite{
		ScenarioInitializer: func(s *godog.ScenarioContext) {
			InitializeScenario(s)
		},
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"../features"},
			Tags:     tags,
			Strict:   true,
			TestingT: t,
		},
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}

type testContext struct {
	uri               string
	headers           map[string]string
	client            *http.Client
	response          *response
	db                *mock.Db
	serverPort        int
	accessToken       string
	refreshToken      string
	currentUserID     uuid.UUID
	lastTransactionID uuid.UUID
}

type response struct {
	status int
	body   any
}

var serverInit sync.Once
var testDB *mock.Db
var testServerPort int
var portInit sync.Once

func initializePort() {
	portInit.Do(func() {
		testServerPort = findAvailablePort()
		_ = os.Setenv("ENV", "test")
	})
}

func InitializeScenario(ctx *godog.ScenarioContext) {
	initializePort()

	test := &testContext{
		uri:        fmt.Sprintf("http://localhost:%d", testServerPort),
		client:     &http.Client{Timeout: 10 * time.Second},
		serverPort: testServerPort,
		db: mock.NewDb(map[string]any{
			"users":          &model.UserModel{},
			"refresh_tokens": &model.RefreshTokenModel{},
			"categories":     &model.CategoryModel{},
			"transactions":   &model.TransactionModel{},
			"budgets":        &model.BudgetModel{},
			"email_queue":    &model.EmailQueueModel{},
		}),
	}

	testDB = test.db

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		test.before()
		return ctx, nil
	})

	// Background steps
	ctx.Given(`^the API server is running$`, test.theAPIServerIsRunning)

	// User setup steps
	ctx.Given(`^I am logged in as "([^"]*)"$`, test.iAmLoggedInAs)
	ctx.Given(`^a deactivated user exists with email "([^"]*)"$`, test.aDeactivatedUserExistsWithEmail)
	ctx.Given(`^the header is empty$`, test.theHeaderIsEmpty)
	ctx.Given(`^the header contains the key "([^"]*)" with "([^"]*)"$`, test.theHeaderContainsTheKeyWith)

	// Data setup steps
	ctx.Given(`^a category exists with name "([^"]*)" and type "([^"]*)"$`, test.aCategoryExistsWithNameAndType)
	ctx.Given(`^(\d+) "([^"]*)" transactions of ([\d.]+) exist in category "([^"]*)"$`, test.transactionsExistInCategory)
	ctx.Given(`^a "([^"]*)" transaction of ([\d.]+) exists in category "([^"]*)" on "([^"]*)"$`, test.aTransactionExistsInCategoryOn)

	// Request steps
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)"$`, test.iSendARequestTo)
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, test.iSendARequestToWithBody)

	// Response assertion steps
	ctx.Then(`^the response status should be (\d+)$`, test.theResponseStatusShouldBe)
	ctx.Then(`^the response should be JSON$`, test.theResponseShouldBeJSON)
	ctx.Then(`^the response should contain "([^"]*)"$`, test.theResponseShouldContain)
	ctx.Then(`^the response field "([^"]*)" should be "([^"]*)"$`, test.theResponseFieldShouldBe)
	ctx.Then(`^the response field "([^"]*)" should exist$`, test.theResponseFieldShouldExist)

	// Database assertion steps
	ctx.Then(`^the db should contain (\d+) objects in the "([^"]*)" table$`, test.theDbShouldContainObjectsInTheTable)
	ctx.Then(`^the db should contain (\d+) objects in "([^"]*)" with the values$`, test.theDbShouldContainObjectsInWithTheValues)
}

func findAvailablePort() int {
	listener, err := net.Listen("tcp", ":0")
	if err != nil {
		panic(err)
	}
	defer listener.Close()
	return listener.Addr().(*net.TCPAddr).Port
}

func (t *testContext) before() {
	t.headers = make(map[string]string)
	t.accessToken = ""
	t.refreshToken = ""
	t.currentUserID = uuid.Nil
	t.lastTransactionID = uuid.Nil

	if t.db != nil {
		if err := t.db.Reset(); err != nil {
			panic(fmt.Sprintf("failed to reset test database: %v", err))
		}
	}
	_ = mock.ClearRedis(mock.NewRedis())
}

func (t *testContext) startServer() {
	serverInit.Do(func() {
		go func() {
			gin.SetMode(gin.TestMode)

			dbConn := testDB.DbConn
			redisClient := mock.NewRedis()

			userRepo := persistence.NewUserRepository(dbConn)
			tokenRepo := persistence.NewTokenRepository(dbConn)
			categoryRepo := persistence.NewCategoryRepository(dbConn, entity.SentinelCategory)
			transactionRepo := persistence.NewTransactionRepository(dbConn)
			budgetRepo := persistence.NewBudgetRepository(dbConn)
			emailQueueRepo := persistence.NewEmailQueueRepository(dbConn)

			tokenService := adapters.NewTokenService(testJWTSecret, 15*time.Minute, 7*24*time.Hour, tokenRepo)
			summaryCache := adapters.NewRedisSummaryCache(redisClient)
			emailService := email.NewService(emailQueueRepo, "https://app.pennyflow.dev")

			loginUseCase := user.NewLoginUserUseCase(userRepo)
			deactivateUseCase := user.NewDeactivateUserUseCase(userRepo, emailService)
			purgeUseCase := user.NewPurgeAccountUseCase(userRepo, categoryRepo, transactionRepo, budgetRepo, tokenService, emailService)

			seedDefaultsUseCase := category.NewSeedDefaultsUseCase(categoryRepo, defaultExpenseCategories, defaultIncomeCategories)
			listCategoriesUseCase := category.NewListCategoriesUseCase(categoryRepo)
			upsertCategoryUseCase := category.NewUpsertCategoryUseCase(categoryRepo)
			categoryExistsUseCase := category.NewCategoryExistsUseCase(categoryRepo)
			deleteCategoryUseCase := category.NewDeleteCategorySafeUseCase(categoryRepo)

			createTransactionUseCase := transaction.NewCreateTransactionUseCase(transactionRepo)
			listTransactionsUseCase := transaction.NewListTransactionsUseCase(transactionRepo)
			deleteTransactionUseCase := transaction.NewDeleteTransactionUseCase(transactionRepo)

			upsertBudgetUseCase := budget.NewUpsertBudgetUseCase(budgetRepo)
			listBudgetsUseCase := budget.NewListBudgetsUseCase(budgetRepo)

			getSummaryUseCase := dashboard.NewGetSummaryUseCase(transactionRepo, summaryCache, 5*time.Minute)

			healthController := controller.NewHealthController(func() bool {
				return testDB != nil && testDB.DbConn != nil
			})
			authController := controller.NewAuthController(loginUseCase, seedDefaultsUseCase, tokenService)
			userController := controller.NewUserController(deactivateUseCase, purgeUseCase)
			categoryController := controller.NewCategoryController(listCategoriesUseCase, upsertCategoryUseCase, categoryExistsUseCase, deleteCategoryUseCase)
			transactionController := controller.NewTransactionController(createTransactionUseCase, listTransactionsUseCase, deleteTransactionUseCase)
			budgetController := controller.NewBudgetController(upsertBudgetUseCase, listBudgetsUseCase)
			dashboardController := controller.NewDashboardController(getSummaryUseCase)

			loginRateLimiter := middleware.NewRateLimiter()
			authMiddleware := middleware.NewAuthMiddleware(tokenService)

			r := router.NewRouter(healthController, authController, userController, categoryController, transactionController, budgetController, dashboardController, nil, loginRateLimiter, authMiddleware)
			engine := r.Setup("test")

			server := &http.Server{
				Addr:    fmt.Sprintf(":%d", testServerPort),
				Handler: engine,
			}
			_ = server.ListenAndServe()
		}()
	})

	// Wait for server to be ready
	for i := 0; i < 50; i++ {
		resp, err := http.Get(t.uri + "/health")
		if err == nil && resp.StatusCode == http.StatusOK {
			resp.Body.Close()
			return
		}
		time.Sleep(100 * time.Millisecond)
	}
}

func (t *testContext) theAPIServerIsRunning() error {
	t.startServer()
	return nil
}

// iAmLoggedInAs performs a real login through the API, provisioning the user
// on first sight the same way the external identity provider flow would.
func (t *testContext) iAmLoggedInAs(email string) error {
	payload, _ := json.Marshal(map[string]string{
		"email": email,
		"name":  "Test User",
	})

	resp, err := t.client.Post(t.uri+"/api/v1/auth/login", "application/json", bytes.NewReader(payload))
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("login failed with status %d: %s", resp.StatusCode, string(bodyBytes))
	}

	var body map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return err
	}

	t.accessToken, _ = body["access_token"].(string)
	t.refreshToken, _ = body["refresh_token"].(string)

	if userBody, ok := body["user"].(map[string]any); ok {
		if idStr, ok := userBody["id"].(string); ok {
			if id, err := uuid.Parse(idStr); err == nil {
				t.currentUserID = id
			}
		}
	}
	if t.currentUserID == uuid.Nil {
		return errors.New("login response did not carry a user id")
	}
	return nil
}

func (t *testContext) aDeactivatedUserExistsWithEmail(email string) error {
	now := time.Now().UTC()
	userModel := &model.UserModel{
		ID:        uuid.New(),
		Email:     email,
		Name:      "Former User",
		Active:    false,
		CreatedAt: now,
		UpdatedAt: now,
	}
	return t.db.DbConn.Create(userModel).Error
}

func (t *testContext) theHeaderIsEmpty() error {
	t.headers = make(map[string]string)
	t.accessToken = ""
	return nil
}

func (t *testContext) theHeaderContainsTheKeyWith(key, value string) error {
	t.headers[key] = value
	return nil
}

func (t *testContext) aCategoryExistsWithNameAndType(name, categoryType string) error {
	now := time.Now().UTC()
	categoryModel := &model.CategoryModel{
		ID:        uuid.New(),
		UserID:    t.currentUserID,
		Type:      categoryType,
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}
	return t.db.DbConn.Create(categoryModel).Error
}

func (t *testContext) transactionsExistInCategory(count int, txType, amount, categoryName string) error {
	for i := 0; i < count; i++ {
		date := fmt.Sprintf("2026-03-%02d", i+1)
		if err := t.aTransactionExistsInCategoryOn(txType, amount, categoryName, date); err != nil {
			return err
		}
	}
	return nil
}

func (t *testContext) aTransactionExistsInCategoryOn(txType, amount, categoryName, dateStr string) error {
	parsedAmount, err := decimal.NewFromString(amount)
	if err != nil {
		return fmt.Errorf("invalid amount %q: %w", amount, err)
	}
	date, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return fmt.Errorf("invalid date %q: %w", dateStr, err)
	}

	now := time.Now().UTC()
	txModel := &model.TransactionModel{
		ID:          uuid.New(),
		UserID:      t.currentUserID,
		Type:        txType,
		Category:    categoryName,
		Amount:      parsedAmount,
		Description: "seeded transaction",
		Date:        date,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := t.db.DbConn.Create(txModel).Error; err != nil {
		return err
	}
	t.lastTransactionID = txModel.ID
	return nil
}

func (t *testContext) iSendARequestTo(method, path string) error {
	return t.executeRequest(method, t.replacePlaceholders(path), nil)
}

func (t *testContext) iSendARequestToWithBody(method, path string, body *godog.DocString) error {
	var payload []byte
	if body != nil && body.Content != "" {
		payload = []byte(t.replacePlaceholders(body.Content))
	}
	return t.executeRequest(method, t.replacePlaceholders(path), payload)
}

func (t *testContext) replacePlaceholders(content string) string {
	content = strings.ReplaceAll(content, "{{access_token}}", t.accessToken)
	content = strings.ReplaceAll(content, "{{refresh_token}}", t.refreshToken)
	content = strings.ReplaceAll(content, "{{transaction_id}}", t.lastTransactionID.String())
	content = strings.ReplaceAll(content, "{{user_id}}", t.currentUserID.String())
	return content
}

func (t *testContext) executeRequest(method, path string, payload []byte) error {
	var req *http.Request
	var err error

	url := t.uri + path
	if payload != nil {
		req, err = http.NewRequest(method, url, bytes.NewReader(payload))
	} else {
		req, err = http.NewRequest(method, url, nil)
	}
	if err != nil {
		return err
	}

	req.Header.Set("Content-Type", "application/json")
	if t.accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+t.accessToken)
	}
	for key, value := range t.headers {
		req.Header.Set(key, value)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	t.response = &response{status: resp.StatusCode}

	var responseBody map[string]any
	if err := json.Unmarshal(bodyBytes, &responseBody); err != nil {
		t.response.body = string(bodyBytes)
		return nil
	}
	t.response.body = responseBody

	// Rotate stored tokens when a new pair comes back.
	if token, ok := responseBody["access_token"].(string); ok && token != "" {
		t.accessToken = token
	}
	if token, ok := responseBody["refresh_token"].(string); ok && token != "" {
		t.refreshToken = token
	}
	if idStr, ok := responseBody["id"].(string); ok {
		if id, err := uuid.Parse(idStr); err == nil {
			t.lastTransactionID = id
		}
	}
	if userBody, ok := responseBody["user"].(map[string]any); ok {
		if idStr, ok := userBody["id"].(string); ok {
			if id, err := uuid.Parse(idStr); err == nil {
				t.currentUserID = id
			}
		}
	}

	return nil
}

func (t *testContext) theResponseStatusShouldBe(expectedStatus int) error {
	if t.response == nil {
		return errors.New("no response received")
	}
	if t.response.status != expectedStatus {
		return fmt.Errorf("expected status %d, got %d (body: %v)", expectedStatus, t.response.status, t.response.body)
	}
	return nil
}

func (t *testContext) theResponseShouldBeJSON() error {
	if t.response == nil {
		return errors.New("no response received")
	}
	if _, ok := t.response.body.(map[string]any); !ok {
		return fmt.Errorf("response is not JSON: %v", t.response.body)
	}
	return nil
}

func (t *testContext) theResponseShouldContain(field string) error {
	if t.response == nil {
		return errors.New("no response received")
	}

	body, ok := t.response.body.(map[string]any)
	if !ok {
		return fmt.Errorf("response is not a JSON object: %v", t.response.body)
	}

	if _, exists := body[field]; !exists {
		return fmt.Errorf("response does not contain field '%s': %v", field, body)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldBe(field, expectedValue string) error {
	if t.response == nil {
		return errors.New("no response received")
	}

	body, ok := t.response.body.(map[string]any)
	if !ok {
		return fmt.Errorf("response is not a JSON object: %v", t.response.body)
	}

	value := getFieldValue(body, field)
	if value == nil {
		return fmt.Errorf("field '%s' not found in response: %v", field, body)
	}

	actualValue := fmt.Sprintf("%v", value)
	if actualValue != expectedValue {
		return fmt.Errorf("field '%s' expected '%s', got '%s'", field, expectedValue, actualValue)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldExist(field string) error {
	if t.response == nil {
		return errors.New("no response received")
	}

	body, ok := t.response.body.(map[string]any)
	if !ok {
		return fmt.Errorf("response is not a JSON object: %v", t.response.body)
	}

	if getFieldValue(body, field) == nil {
		return fmt.Errorf("field '%s' not found in response: %v", field, body)
	}
	return nil
}

func (t *testContext) theDbShouldContainObjectsInTheTable(quantity int, table string) error {
	return t.countRows(quantity, table, nil)
}

func (t *testContext) theDbShouldContainObjectsInWithTheValues(quantity int, table string, content *godog.DocString) error {
	var criteria map[string]any
	if err := json.Unmarshal([]byte(content.Content), &criteria); err != nil {
		return err
	}
	return t.countRows(quantity, table, criteria)
}

func (t *testContext) countRows(quantity int, table string, criteria map[string]any) error {
	entityModel, ok := t.db.GetModel(table)
	if !ok {
		return fmt.Errorf("table '%s' not found in models", table)
	}

	entityType := reflect.TypeOf(entityModel).Elem()
	entitySlicePtr := reflect.New(reflect.SliceOf(entityType))

	query := t.db.DbConn.Model(entityModel)
	for key, value := range criteria {
		if value == "{{user_id}}" {
			value = t.currentUserID.String()
		}
		query = query.Where(fmt.Sprintf("%s = ?", key), value)
	}

	result := query.Find(entitySlicePtr.Interface())
	if result.Error != nil && !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return result.Error
	}

	count := entitySlicePtr.Elem().Len()
	if count != quantity {
		return fmt.Errorf("expected %d objects in '%s' with criteria %v, got %d", quantity, table, criteria, count)
	}
	return nil
}

func getFieldValue(object any, dotSeparatedField string) any {
	if object == nil {
		return nil
	}

	var objectMap map[string]any
	switch v := object.(type) {
	case map[string]any:
		objectMap = v
	default:
		objectJSON, _ := json.Marshal(object)
		if err := json.Unmarshal(objectJSON, &objectMap); err != nil {
			return nil
		}
	}

	fields := strings.Split(dotSeparatedField, ".")
	var field any = objectMap

	for _, currentField := range fields {
		if field == nil {
			return nil
		}

		if i, err := strconv.Atoi(currentField); err == nil {
			if arr, ok := field.([]any); ok && i < len(arr) {
				field = arr[i]
			} else {
				return nil
			}
		} else {
			if m, ok := field.(map[string]any); ok {
				field = m[currentField]
			} else {
				return nil
			}
		}
	}

	return field
}
