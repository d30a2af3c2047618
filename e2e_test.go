package main

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"web3explorer/handlers"
	"web3explorer/repository"
	"web3explorer/service"
	"web3explorer/storage"
	"web3explorer/walletconn"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/require"
)

// captureNotifier запоминает последнее уведомление, чтобы тест мог достать
// одноразовый код подтверждения.
type captureNotifier struct {
	mu   sync.Mutex
	last string
}

func (n *captureNotifier) Notify(kind, recipient, message string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.last = message
}

func (n *captureNotifier) lastCode() string {
	n.mu.Lock()
	defer n.mu.Unlock()
	if len(n.last) < 6 {
		return ""
	}
	return n.last[len(n.last)-6:]
}

func setupTestServer(t *testing.T) (*httptest.Server, *captureNotifier) {
	t.Helper()

	repo := repository.NewKVRepository(storage.NewMemoryStore())
	require.NoError(t, repo.Seed(context.Background()))

	notifier := &captureNotifier{}
	svc := service.NewService(repo, service.RealClock{}, notifier, "secret", 0)
	connector := walletconn.NewConnector(walletconn.NewSimulatedChain(time.Now().Add(-10 * time.Minute)))
	h := handlers.NewHandler(svc, connector, "secret")

	r := mux.NewRouter()
	h.Register(r)
	ts := httptest.NewServer(r)
	t.Cleanup(ts.Close)
	return ts, notifier
}

func login(t *testing.T, ts *httptest.Server, username, password string) (string, map[string]interface{}) {
	t.Helper()

	payload, err := json.Marshal(map[string]string{"username": username, "password": password})
	require.NoError(t, err)
	resp, err := ts.Client().Post(ts.URL+"/api/auth/login", "application/json", bytes.NewReader(payload))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	token, _ := body["token"].(string)
	require.NotEmpty(t, token)
	user, _ := body["user"].(map[string]interface{})
	require.NotNil(t, user)
	return token, user
}

func doRequest(t *testing.T, ts *httptest.Server, method, path, token string, payload interface{}) (int, map[string]interface{}) {
	t.Helper()

	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(data)
	}
	req, err := http.NewRequest(method, ts.URL+path, body)
	require.NoError(t, err)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := ts.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var decoded map[string]interface{}
	if len(raw) > 0 && raw[0] == '{' {
		require.NoError(t, json.Unmarshal(raw, &decoded))
	}
	return resp.StatusCode, decoded
}

func TestE2E_TransferTokens(t *testing.T) {
	ts, _ := setupTestServer(t)

	aliceToken, alice := login(t, ts, "alice", "pass123")
	_, bob := login(t, ts, "bob", "pass456")

	status, updated := doRequest(t, ts, "POST", "/api/transfer", aliceToken, map[string]interface{}{
		"toAddress": bob["address"],
		"amount":    300,
	})
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, float64(700), updated["tokenBalance"])

	// Получатель видит зачисление.
	bobToken, _ := login(t, ts, "bob", "pass456")
	status, me := doRequest(t, ts, "GET", "/api/me", bobToken, nil)
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, float64(1050), me["tokenBalance"])

	// Перевод самому себе отклоняется.
	status, _ = doRequest(t, ts, "POST", "/api/transfer", aliceToken, map[string]interface{}{
		"toAddress": alice["address"],
		"amount":    10,
	})
	require.Equal(t, http.StatusConflict, status)

	// Больше, чем есть на балансе.
	status, _ = doRequest(t, ts, "POST", "/api/transfer", aliceToken, map[string]interface{}{
		"toAddress": bob["address"],
		"amount":    100000,
	})
	require.Equal(t, http.StatusBadRequest, status)

	// Баланс отправителя не изменился после отклонённых попыток.
	status, me = doRequest(t, ts, "GET", "/api/me", aliceToken, nil)
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, float64(700), me["tokenBalance"])
}

func TestE2E_FaucetAndContracts(t *testing.T) {
	ts, _ := setupTestServer(t)

	// Кран без подключённого кошелька недоступен.
	status, _ := doRequest(t, ts, "POST", "/api/faucet/claim", "", nil)
	require.Equal(t, http.StatusConflict, status)

	status, _ = doRequest(t, ts, "POST", "/api/wallet/connect", "", map[string]string{
		"account": "0x742d35Cc6634C0532925a3b844Bc454e4438f44e",
	})
	require.Equal(t, http.StatusOK, status)

	status, faucet := doRequest(t, ts, "POST", "/api/faucet/claim", "", nil)
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, float64(100), faucet["balance"])

	// Повторный запрос в течение часа блокируется.
	status, _ = doRequest(t, ts, "POST", "/api/faucet/claim", "", nil)
	require.Equal(t, http.StatusBadRequest, status)

	status, deployed := doRequest(t, ts, "POST", "/api/contracts", "", map[string]string{
		"name":   "Мой токен",
		"symbol": "mtk",
	})
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, float64(90), deployed["balance"])
	contract, _ := deployed["contract"].(map[string]interface{})
	require.NotNil(t, contract)
	require.Equal(t, "MTK", contract["symbol"])

	req, err := http.NewRequest("GET", ts.URL+"/api/contracts", nil)
	require.NoError(t, err)
	resp, err := ts.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	var contracts []map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&contracts))
	require.Len(t, contracts, 1)
}

func TestE2E_BankDeposit(t *testing.T) {
	ts, notifier := setupTestServer(t)

	token, _ := login(t, ts, "alice", "pass123")

	status, initiated := doRequest(t, ts, "POST", "/api/bank/initiate", token, map[string]interface{}{
		"type":          "deposit",
		"amount":        0.5,
		"bankName":      "Сбербанк",
		"accountNumber": "1234567890",
		"ifscCode":      "SBIN0001234",
	})
	require.Equal(t, http.StatusOK, status)
	challengeID, _ := initiated["challengeId"].(string)
	require.NotEmpty(t, challengeID)

	// Неверный код не меняет баланс.
	code := notifier.lastCode()
	require.Len(t, code, 6)
	wrong := "000000"
	if wrong == code {
		wrong = "000001"
	}
	status, _ = doRequest(t, ts, "POST", "/api/bank/confirm", token, map[string]string{
		"challengeId": challengeID,
		"code":        wrong,
	})
	require.Equal(t, http.StatusBadRequest, status)

	status, me := doRequest(t, ts, "GET", "/api/me", token, nil)
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, "2.5", me["ethBalance"])

	// Верный код зачисляет ровно 0.5 ETH.
	status, confirmed := doRequest(t, ts, "POST", "/api/bank/confirm", token, map[string]string{
		"challengeId": challengeID,
		"code":        code,
	})
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, "3.00", confirmed["ethBalance"])
}

func TestE2E_ClickerGame(t *testing.T) {
	ts, _ := setupTestServer(t)

	token, _ := login(t, ts, "alice", "pass123")

	status, state := doRequest(t, ts, "POST", "/api/game/start", token, map[string]string{"game": "clicker"})
	require.Equal(t, http.StatusOK, status)
	sessionID, _ := state["id"].(string)
	require.NotEmpty(t, sessionID)

	for i := 0; i < 5; i++ {
		status, state = doRequest(t, ts, "POST", "/api/game/"+sessionID+"/click", token, nil)
		require.Equal(t, http.StatusOK, status)
	}
	require.Equal(t, float64(5), state["score"])

	for i := 0; i < 30; i++ {
		status, state = doRequest(t, ts, "POST", "/api/game/"+sessionID+"/tick", token, nil)
		require.Equal(t, http.StatusOK, status)
	}
	require.Equal(t, false, state["active"])

	status, finished := doRequest(t, ts, "POST", "/api/game/"+sessionID+"/finish", token, nil)
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, float64(5), finished["earned"])
	user, _ := finished["user"].(map[string]interface{})
	require.NotNil(t, user)
	require.Equal(t, float64(505), user["gameTokens"])
	require.Equal(t, float64(1005), user["tokenBalance"])

	// Вывод игровых токенов пополняет основной баланс.
	status, me := doRequest(t, ts, "POST", "/api/game/withdraw", token, map[string]int{"amount": 505})
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, float64(0), me["gameTokens"])
	require.Equal(t, float64(1510), me["tokenBalance"])
}

func TestE2E_TimeCapsules(t *testing.T) {
	ts, _ := setupTestServer(t)

	status, _ := doRequest(t, ts, "POST", "/api/wallet/connect", "", map[string]string{
		"account": "0x742d35Cc6634C0532925a3b844Bc454e4438f44e",
	})
	require.Equal(t, http.StatusOK, status)

	status, capsule := doRequest(t, ts, "POST", "/api/capsules", "", map[string]string{
		"message":  "привет из прошлого",
		"category": "Prediction",
	})
	require.Equal(t, http.StatusOK, status)
	id, _ := capsule["id"].(string)
	require.Len(t, id, 64)

	// Минута ещё не прошла.
	status, _ = doRequest(t, ts, "POST", "/api/capsules/"+id+"/open", "", nil)
	require.Equal(t, http.StatusConflict, status)

	// Неизвестная категория отклоняется.
	status, _ = doRequest(t, ts, "POST", "/api/capsules", "", map[string]string{
		"message":  "привет",
		"category": "Nonsense",
	})
	require.Equal(t, http.StatusBadRequest, status)
}

func TestE2E_SignupAndNFT(t *testing.T) {
	ts, _ := setupTestServer(t)

	payload, err := json.Marshal(map[string]string{
		"username":    "carol",
		"password":    "pass789",
		"email":       "carol@mail.ru",
		"phoneNumber": "9990001122",
	})
	require.NoError(t, err)
	resp, err := ts.Client().Post(ts.URL+"/api/auth/signup", "application/json", bytes.NewReader(payload))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var signup map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&signup))
	token, _ := signup["token"].(string)
	require.NotEmpty(t, token)

	status, minted := doRequest(t, ts, "POST", "/api/nft/mint", token, map[string]string{"name": "Дракон"})
	require.Equal(t, http.StatusOK, status)
	nfts, _ := minted["nfts"].([]interface{})
	require.Len(t, nfts, 1)

	// Повтор имени в другом регистре отклоняется.
	status, _ = doRequest(t, ts, "POST", "/api/nft/mint", token, map[string]string{"name": "дракон"})
	require.Equal(t, http.StatusConflict, status)
}

func TestE2E_ExplorerBlocks(t *testing.T) {
	ts, _ := setupTestServer(t)

	resp, err := ts.Client().Get(ts.URL + "/api/explorer/blocks")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var blocks []map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&blocks))
	require.Len(t, blocks, 5)
	// Блоки идут от свежего к старому.
	require.Greater(t, blocks[0]["number"], blocks[4]["number"])
}
