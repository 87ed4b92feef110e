package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/DAILY622/Cloud-wealth-mining/internal/api/apierr"
	"github.com/DAILY622/Cloud-wealth-mining/internal/api/middleware"
	"github.com/DAILY622/Cloud-wealth-mining/internal/api/request"
	"github.com/DAILY622/Cloud-wealth-mining/internal/api/response"
	"github.com/DAILY622/Cloud-wealth-mining/internal/model"
	"github.com/DAILY622/Cloud-wealth-mining/internal/services/session"
)

// MinerHandler handles mining and progression endpoints
type MinerHandler struct {
	sessionService session.ServiceInterface
}

// NewMinerHandler creates a new miner handler
func NewMinerHandler(sessionService session.ServiceInterface) *MinerHandler {
	return &MinerHandler{
		sessionService: sessionService,
	}
}

// GetMiner handles GET /api/v1/miner
func (h *MinerHandler) GetMiner(w http.ResponseWriter, r *http.Request) {
	player := middleware.MustGetPlayer(r.Context())

	miner, err := h.sessionService.GetOrCreateMiner(r.Context(), player.ID)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.MinerFromModel(miner))
}

// Mine handles POST /api/v1/miner/mine
func (h *MinerHandler) Mine(w http.ResponseWriter, r *http.Request) {
	player := middleware.MustGetPlayer(r.Context())

	result, err := h.sessionService.Mine(r.Context(), player.ID)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.MineResponse{
		Miner:           response.MinerFromModel(result.Miner),
		Reward:          result.Reward,
		RewardDisplay:   model.FormatCurrency(result.Reward),
		LeveledUp:       result.LeveledUp,
		NewAchievements: response.AchievementsFromModel(result.NewAchievements),
	})
}

// SetAutoMining handles POST /api/v1/miner/auto-mining
func (h *MinerHandler) SetAutoMining(w http.ResponseWriter, r *http.Request) {
	player := middleware.MustGetPlayer(r.Context())

	var req request.SetAutoMiningRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.WriteError(w, apierr.NewInvalidRequestError("invalid request body"))
		return
	}

	miner, err := h.sessionService.SetAutoMining(r.Context(), player.ID, req.Enabled)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.MinerFromModel(miner))
}

// GetAchievements handles GET /api/v1/achievements
func (h *MinerHandler) GetAchievements(w http.ResponseWriter, r *http.Request) {
	player := middleware.MustGetPlayer(r.Context())

	achievements, err := h.sessionService.GetAchievements(r.Context(), player.ID)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.AchievementsFromModel(achievements))
}

// GetUpgrades handles GET /api/v1/upgrades
func (h *MinerHandler) GetUpgrades(w http.ResponseWriter, r *http.Request) {
	player := middleware.MustGetPlayer(r.Context())

	upgrades, err := h.sessionService.GetUpgrades(r.Context(), player.ID)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.UpgradesFromModel(upgrades))
}

// PurchaseUpgrade handles POST /api/v1/upgrades/{id}/purchase
func (h *MinerHandler) PurchaseUpgrade(w http.ResponseWriter, r *http.Request) {
	player := middleware.MustGetPlayer(r.Context())
	upgradeID := mux.Vars(r)["id"]

	result, err := h.sessionService.PurchaseUpgrade(r.Context(), player.ID, upgradeID)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.PurchaseResponse{
		Miner:    response.MinerFromModel(result.Miner),
		Upgrade:  response.UpgradeFromModel(*result.Upgrade),
		Upgrades: response.UpgradesFromModel(result.Upgrades),
	})
}
