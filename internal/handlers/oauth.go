package handlers

import (
	"net/http"

	"github.com/alimgiray/gitfocus/internal/services"
	"github.com/gin-gonic/gin"
)

type OAuthHandler struct {
	oauthService *services.OAuthService
}

func NewOAuthHandler(oauthService *services.OAuthService) *OAuthHandler {
	return &OAuthHandler{
		oauthService: oauthService,
	}
}

type exchangeRequest struct {
	Code string `json:"code"`
}

// Exchange handles POST /exchange: swaps an authorization code for an
// access token so the browser never sees the client secret.
func (h *OAuthHandler) Exchange(c *gin.Context) {
	var req exchangeRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Code == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing code"})
		return
	}

	token, err := h.oauthService.ExchangeCodeForToken(c.Request.Context(), req.Code)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	payload := gin.H{
		"access_token": token.AccessToken,
		"token_type":   token.TokenType,
	}
	if scope := token.Extra("scope"); scope != nil {
		payload["scope"] = scope
	}

	c.JSON(http.StatusOK, payload)
}
