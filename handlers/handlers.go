package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"web3explorer/repository"
	"web3explorer/service"
	"web3explorer/walletconn"

	"github.com/golang-jwt/jwt/v4"
	"github.com/gorilla/mux"
)

type Handler struct {
	svc       *service.Service
	connector *walletconn.Connector
	jwtSecret string
}

func NewHandler(svc *service.Service, connector *walletconn.Connector, jwtSecret string) Handler {
	return Handler{
		svc:       svc,
		connector: connector,
		jwtSecret: jwtSecret,
	}
}

type AuthRequest struct {
	Username    string `json:"username"`
	Password    string `json:"password"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
}

type TransferRequest struct {
	ToAddress string `json:"toAddress"`
	Amount    int    `json:"amount"`
}

type BankInitiateRequest struct {
	Type          string  `json:"type"`
	Amount        float64 `json:"amount"`
	BankName      string  `json:"bankName"`
	AccountNumber string  `json:"accountNumber"`
	IFSCCode      string  `json:"ifscCode"`
}

type BankConfirmRequest struct {
	ChallengeID string `json:"challengeId"`
	Code        string `json:"code"`
}

type FundsRequest struct {
	Amount             float64 `json:"amount"`
	BankName           string  `json:"bankName"`
	AccountNumber      string  `json:"accountNumber"`
	IFSCCode           string  `json:"ifscCode"`
	DestinationAccount string  `json:"destinationAccount"`
}

type GameStartRequest struct {
	Game string `json:"game"`
}

type GuessRequest struct {
	Guess int `json:"guess"`
}

type AmountRequest struct {
	Amount int `json:"amount"`
}

type MintRequest struct {
	Name string `json:"name"`
}

type ProfileRequest struct {
	Username    string `json:"username"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
	Avatar      string `json:"avatar"`
}

type ContractRequest struct {
	Name   string `json:"name"`
	Symbol string `json:"symbol"`
}

type CapsuleRequest struct {
	Message  string `json:"message"`
	Category string `json:"category"`
}

type WalletConnectRequest struct {
	Account string `json:"account"`
}

type ErrorResponse struct {
	Errors string `json:"errors"`
}

func (h Handler) Register(r *mux.Router) {
	r.HandleFunc("/api/auth/signup", h.SignupHandler).Methods("POST")
	r.HandleFunc("/api/auth/login", h.LoginHandler).Methods("POST")
	r.HandleFunc("/api/auth/logout", h.JWTMiddleware(h.LogoutHandler)).Methods("POST")
	r.HandleFunc("/api/me", h.JWTMiddleware(h.MeHandler)).Methods("GET")
	r.HandleFunc("/api/profile", h.JWTMiddleware(h.ProfileHandler)).Methods("PUT")

	r.HandleFunc("/api/transfer", h.JWTMiddleware(h.TransferHandler)).Methods("POST")
	r.HandleFunc("/api/bank/initiate", h.JWTMiddleware(h.BankInitiateHandler)).Methods("POST")
	r.HandleFunc("/api/bank/confirm", h.JWTMiddleware(h.BankConfirmHandler)).Methods("POST")
	r.HandleFunc("/api/funds/add", h.JWTMiddleware(h.AddFundsHandler)).Methods("POST")
	r.HandleFunc("/api/funds/withdraw", h.JWTMiddleware(h.WithdrawFundsHandler)).Methods("POST")

	r.HandleFunc("/api/game/start", h.JWTMiddleware(h.GameStartHandler)).Methods("POST")
	r.HandleFunc("/api/game/{id}/tick", h.JWTMiddleware(h.GameTickHandler)).Methods("POST")
	r.HandleFunc("/api/game/{id}/click", h.JWTMiddleware(h.GameClickHandler)).Methods("POST")
	r.HandleFunc("/api/game/{id}/guess", h.JWTMiddleware(h.GameGuessHandler)).Methods("POST")
	r.HandleFunc("/api/game/{id}/finish", h.JWTMiddleware(h.GameFinishHandler)).Methods("POST")
	r.HandleFunc("/api/game/withdraw", h.JWTMiddleware(h.GameWithdrawHandler)).Methods("POST")

	r.HandleFunc("/api/nft/mint", h.JWTMiddleware(h.MintNFTHandler)).Methods("POST")
	r.HandleFunc("/api/nft", h.JWTMiddleware(h.ListNFTHandler)).Methods("GET")

	r.HandleFunc("/api/faucet/claim", h.FaucetClaimHandler).Methods("POST")
	r.HandleFunc("/api/faucet", h.FaucetStatusHandler).Methods("GET")
	r.HandleFunc("/api/contracts", h.DeployContractHandler).Methods("POST")
	r.HandleFunc("/api/contracts", h.ListContractsHandler).Methods("GET")
	r.HandleFunc("/api/contracts/{id}", h.DeleteContractHandler).Methods("DELETE")
	r.HandleFunc("/api/capsules", h.CreateCapsuleHandler).Methods("POST")
	r.HandleFunc("/api/capsules", h.ListCapsulesHandler).Methods("GET")
	r.HandleFunc("/api/capsules/{id}/open", h.OpenCapsuleHandler).Methods("POST")

	r.HandleFunc("/api/wallet/connect", h.WalletConnectHandler).Methods("POST")
	r.HandleFunc("/api/wallet/disconnect", h.WalletDisconnectHandler).Methods("POST")
	r.HandleFunc("/api/wallet", h.WalletStatusHandler).Methods("GET")
	r.HandleFunc("/api/explorer/blocks", h.ExplorerBlocksHandler).Methods("GET")
	r.HandleFunc("/api/explorer/transactions", h.ExplorerTransactionsHandler).Methods("GET")
}

func (h Handler) SignupHandler(w http.ResponseWriter, r *http.Request) {
	var req AuthRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Неверный запрос")
		return
	}
	token, user, err := h.svc.Signup(r.Context(), req.Username, req.Password, req.Email, req.PhoneNumber)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]interface{}{"token": token, "user": user})
}

func (h Handler) LoginHandler(w http.ResponseWriter, r *http.Request) {
	var req AuthRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Неверный запрос")
		return
	}
	token, user, err := h.svc.Authenticate(r.Context(), req.Username, req.Password)
	if err != nil {
		respondWithError(w, http.StatusUnauthorized, err.Error())
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]interface{}{"token": token, "user": user})
}

func (h Handler) LogoutHandler(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Logout(r.Context()); err != nil {
		respondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h Handler) MeHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r.Context())
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Пользователь не найден в контексте")
		return
	}
	user, err := h.svc.GetUser(r.Context(), userID)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, user)
}

func (h Handler) ProfileHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r.Context())
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Пользователь не найден в контексте")
		return
	}
	var req ProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Неверный запрос")
		return
	}
	user, err := h.svc.UpdateProfile(r.Context(), userID, req.Username, req.Email, req.PhoneNumber, req.Avatar)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, user)
}

func (h Handler) TransferHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r.Context())
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Пользователь не найден в контексте")
		return
	}
	var req TransferRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Неверный запрос")
		return
	}
	user, err := h.svc.Transfer(r.Context(), userID, req.ToAddress, req.Amount)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, user)
}

func (h Handler) BankInitiateHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r.Context())
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Пользователь не найден в контексте")
		return
	}
	var req BankInitiateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Неверный запрос")
		return
	}
	challengeID, err := h.svc.InitiateBankTransaction(r.Context(), userID, req.Type, req.Amount, service.BankDetails{
		BankName:      req.BankName,
		AccountNumber: req.AccountNumber,
		IFSCCode:      req.IFSCCode,
	})
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]string{"challengeId": challengeID, "status": "pending"})
}

func (h Handler) BankConfirmHandler(w http.ResponseWriter, r *http.Request) {
	if _, ok := userIDFromContext(r.Context()); !ok {
		respondWithError(w, http.StatusUnauthorized, "Пользователь не найден в контексте")
		return
	}
	var req BankConfirmRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Неверный запрос")
		return
	}
	user, err := h.svc.ConfirmBankTransaction(r.Context(), req.ChallengeID, req.Code)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, user)
}

func (h Handler) AddFundsHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r.Context())
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Пользователь не найден в контексте")
		return
	}
	var req FundsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Неверный запрос")
		return
	}
	user, err := h.svc.AddFunds(r.Context(), userID, req.Amount, service.BankDetails{
		BankName:      req.BankName,
		AccountNumber: req.AccountNumber,
		IFSCCode:      req.IFSCCode,
	})
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, user)
}

func (h Handler) WithdrawFundsHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r.Context())
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Пользователь не найден в контексте")
		return
	}
	var req FundsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Неверный запрос")
		return
	}
	user, err := h.svc.WithdrawFunds(r.Context(), userID, req.Amount, req.DestinationAccount)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, user)
}

func (h Handler) GameStartHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r.Context())
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Пользователь не найден в контексте")
		return
	}
	var req GameStartRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Неверный запрос")
		return
	}
	state, err := h.svc.StartGame(r.Context(), userID, req.Game)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, state)
}

func (h Handler) GameTickHandler(w http.ResponseWriter, r *http.Request) {
	state, err := h.svc.TickGame(mux.Vars(r)["id"])
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, state)
}

func (h Handler) GameClickHandler(w http.ResponseWriter, r *http.Request) {
	state, err := h.svc.ClickGame(mux.Vars(r)["id"])
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, state)
}

func (h Handler) GameGuessHandler(w http.ResponseWriter, r *http.Request) {
	var req GuessRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Неверный запрос")
		return
	}
	state, hint, err := h.svc.GuessGame(mux.Vars(r)["id"], req.Guess)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]interface{}{"state": state, "hint": hint})
}

func (h Handler) GameFinishHandler(w http.ResponseWriter, r *http.Request) {
	user, earned, err := h.svc.FinishGame(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]interface{}{"user": user, "earned": earned})
}

func (h Handler) GameWithdrawHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r.Context())
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Пользователь не найден в контексте")
		return
	}
	var req AmountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Неверный запрос")
		return
	}
	user, err := h.svc.GameWithdraw(r.Context(), userID, req.Amount)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, user)
}

func (h Handler) MintNFTHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r.Context())
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Пользователь не найден в контексте")
		return
	}
	var req MintRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Неверный запрос")
		return
	}
	user, err := h.svc.MintNFT(r.Context(), userID, req.Name)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, user)
}

func (h Handler) ListNFTHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r.Context())
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Пользователь не найден в контексте")
		return
	}
	user, err := h.svc.GetUser(r.Context(), userID)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, user.NFTs)
}

func (h Handler) FaucetClaimHandler(w http.ResponseWriter, r *http.Request) {
	st, err := h.svc.FaucetClaim(r.Context(), h.connector.Account())
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, st)
}

func (h Handler) FaucetStatusHandler(w http.ResponseWriter, r *http.Request) {
	st, err := h.svc.FaucetStatus(r.Context(), h.connector.Account())
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, st)
}

func (h Handler) DeployContractHandler(w http.ResponseWriter, r *http.Request) {
	var req ContractRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Неверный запрос")
		return
	}
	contract, st, err := h.svc.DeployContract(r.Context(), h.connector.Account(), req.Name, req.Symbol)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]interface{}{"contract": contract, "balance": st.Balance})
}

func (h Handler) ListContractsHandler(w http.ResponseWriter, r *http.Request) {
	contracts, err := h.svc.ListContracts(r.Context(), h.connector.Account())
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, contracts)
}

func (h Handler) DeleteContractHandler(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeleteContract(r.Context(), h.connector.Account(), mux.Vars(r)["id"]); err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h Handler) CreateCapsuleHandler(w http.ResponseWriter, r *http.Request) {
	var req CapsuleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Неверный запрос")
		return
	}
	capsule, err := h.svc.CreateCapsule(r.Context(), h.connector.Account(), req.Message, req.Category)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, capsule)
}

func (h Handler) ListCapsulesHandler(w http.ResponseWriter, r *http.Request) {
	capsules, err := h.svc.ListCapsules(r.Context())
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, capsules)
}

func (h Handler) OpenCapsuleHandler(w http.ResponseWriter, r *http.Request) {
	capsule, err := h.svc.OpenCapsule(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, capsule)
}

func (h Handler) WalletConnectHandler(w http.ResponseWriter, r *http.Request) {
	var req WalletConnectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Неверный запрос")
		return
	}
	if err := h.connector.Activate(req.Account); err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]interface{}{"account": h.connector.Account(), "active": true})
}

func (h Handler) WalletDisconnectHandler(w http.ResponseWriter, r *http.Request) {
	h.connector.Deactivate()
	respondWithJSON(w, http.StatusOK, map[string]interface{}{"active": false})
}

func (h Handler) WalletStatusHandler(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"account": h.connector.Account(),
		"active":  h.connector.Active(),
	})
}

func (h Handler) ExplorerBlocksHandler(w http.ResponseWriter, r *http.Request) {
	lib := h.connector.Library()
	latest, err := lib.GetBlockNumber(r.Context())
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}
	blocks := make([]walletconn.Block, 0, 5)
	for i := int64(0); i < 5 && latest-i >= 0; i++ {
		block, err := lib.GetBlock(r.Context(), latest-i)
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, err.Error())
			return
		}
		blocks = append(blocks, block)
	}
	respondWithJSON(w, http.StatusOK, blocks)
}

func (h Handler) ExplorerTransactionsHandler(w http.ResponseWriter, r *http.Request) {
	lib := h.connector.Library()
	latest, err := lib.GetBlockNumber(r.Context())
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}
	txs := make([]walletconn.Transaction, 0, 5)
	for i := int64(0); i < 5 && latest-i >= 0; i++ {
		block, err := lib.GetBlock(r.Context(), latest-i)
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, err.Error())
			return
		}
		if len(block.Transactions) == 0 {
			continue
		}
		tx, err := lib.GetTransaction(r.Context(), block.Transactions[0])
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, err.Error())
			return
		}
		txs = append(txs, tx)
	}
	respondWithJSON(w, http.StatusOK, txs)
}

func (h Handler) JWTMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			respondWithError(w, http.StatusUnauthorized, "Отсутствует токен авторизации")
			return
		}

		const bearerPrefix = "Bearer "
		if len(authHeader) <= len(bearerPrefix) {
			respondWithError(w, http.StatusUnauthorized, "Неверный формат токена")
			return
		}

		tokenStr := authHeader[len(bearerPrefix):]
		token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (interface{}, error) {
			return []byte(h.jwtSecret), nil
		})
		if err != nil || !token.Valid {
			respondWithError(w, http.StatusUnauthorized, "Неверный токен")
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			respondWithError(w, http.StatusUnauthorized, "Неверные данные токена")
			return
		}
		uid, err := strconv.Atoi(stringify(claims["user_id"]))
		if err != nil {
			respondWithError(w, http.StatusUnauthorized, "Неверный идентификатор пользователя в токене")
			return
		}
		ctx := context.WithValue(r.Context(), userIDKey, uid)
		next(w, r.WithContext(ctx))
	}
}

type contextKey string

const userIDKey contextKey = "user_id"

func userIDFromContext(ctx context.Context) (int, bool) {
	id, ok := ctx.Value(userIDKey).(int)
	return id, ok
}

func respondWithServiceError(w http.ResponseWriter, err error) {
	respondWithError(w, statusForError(err), err.Error())
}

func statusForError(err error) int {
	switch {
	case errors.Is(err, service.ErrBadCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, repository.ErrUserNotFound):
		return http.StatusNotFound
	case errors.Is(err, repository.ErrUsernameTaken):
		return http.StatusConflict
	case service.IsValidationError(err),
		service.IsChallengeMismatchError(err),
		service.IsInsufficientResourceError(err):
		return http.StatusBadRequest
	case service.IsStateConflictError(err):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func respondWithError(w http.ResponseWriter, code int, message string) {
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(ErrorResponse{Errors: message})
}

func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(payload)
}

func stringify(val interface{}) string {
	switch v := val.(type) {
	case string:
		return v
	case float64:
		return strconv.Itoa(int(v))
	default:
		return ""
	}
}
