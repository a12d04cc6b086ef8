// ABOUTME: MCP resource implementations for the nutrition tracker.
// ABOUTME: Provides nutri://meals/today, nutri://score/weekly, and nutri://badges.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerResources() {
	// nutri://meals/today - today's meals and totals
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "nutri://meals/today",
		Name:        "Today's Meals",
		Description: "All meals logged today with calorie and macro totals",
		MIMEType:    "application/json",
	}, s.handleTodayResource)

	// nutri://score/weekly - weekly score breakdown
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "nutri://score/weekly",
		Name:        "Weekly Nutrition Score",
		Description: "Weekly balance score with component breakdown and notes",
		MIMEType:    "application/json",
	}, s.handleScoreResource)

	// nutri://badges - earned badges and counters
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "nutri://badges",
		Name:        "Achievement Badges",
		Description: "Earned badges plus streak and goal counters",
		MIMEType:    "application/json",
	}, s.handleBadgesResource)
}

// Resource handlers

func (s *Server) resourceResult(uri string, v any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}
	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

func (s *Server) handleTodayResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	return s.resourceResult("nutri://meals/today", s.tracker.Today())
}

func (s *Server) handleScoreResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	return s.resourceResult("nutri://score/weekly", s.tracker.WeeklyScore())
}

func (s *Server) handleBadgesResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	result := map[string]interface{}{
		"badges":   s.tracker.Achievements.Badges(),
		"counters": s.tracker.Achievements.Counters(),
	}
	return s.resourceResult("nutri://badges", result)
}
