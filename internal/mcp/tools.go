// ABOUTME: MCP tool implementations for meals, scores, badges, and fasting.
// ABOUTME: Tools are thin adapters over the tracker facade.
package mcp

import (
	"context"
	"fmt"
	"strconv"

	"github.com/harperreed/nutri/internal/models"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerTools() {
	// log_meal
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "log_meal",
		Description: "Record a meal from a nutrition estimate",
	}, s.handleLogMeal)

	// list_meals
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_meals",
		Description: "List recent meals, optionally filtered by date",
	}, s.handleListMeals)

	// delete_meal
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "delete_meal",
		Description: "Delete a meal by id",
	}, s.handleDeleteMeal)

	// today_summary
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "today_summary",
		Description: "Today's calories and macros against the target",
	}, s.handleTodaySummary)

	// weekly_score
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "weekly_score",
		Description: "Weekly nutrition balance score with notes",
	}, s.handleWeeklyScore)

	// top_foods
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "top_foods",
		Description: "Most frequently logged foods",
	}, s.handleTopFoods)

	// get_badges
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_badges",
		Description: "Earned achievement badges and current counters",
	}, s.handleGetBadges)

	// fasting_status
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "fasting_status",
		Description: "Current fasting phase with elapsed/remaining/progress",
	}, s.handleFastingStatus)

	// start_fast
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "start_fast",
		Description: "Start a fasting phase",
	}, s.handleStartFast)

	// end_fast
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "end_fast",
		Description: "End the current fasting or eating phase",
	}, s.handleEndFast)
}

// Tool input/output types

type logMealInput struct {
	Name     string  `json:"name" jsonschema:"description=Food name,required"`
	Calories int     `json:"calories" jsonschema:"description=Calories (kcal),required"`
	Carbs    float64 `json:"carbs,omitempty" jsonschema:"description=Carbohydrates in grams"`
	Protein  float64 `json:"protein,omitempty" jsonschema:"description=Protein in grams"`
	Fat      float64 `json:"fat,omitempty" jsonschema:"description=Fat in grams"`
	Sodium   float64 `json:"sodium,omitempty" jsonschema:"description=Sodium in milligrams"`
	MealType string  `json:"meal_type,omitempty" jsonschema:"description=Meal slot (breakfast, morning_snack, lunch, afternoon_snack, dinner, late_night)"`
}

type logMealOutput struct {
	ID        int64    `json:"id"`
	Name      string   `json:"name"`
	Date      string   `json:"date"`
	NewBadges []string `json:"new_badges,omitempty"`
	Message   string   `json:"message"`
}

type listMealsInput struct {
	Date  string `json:"date,omitempty" jsonschema:"description=Filter by date (YYYY-MM-DD)"`
	Limit int    `json:"limit,omitempty" jsonschema:"description=Max results (default 20)"`
}

type deleteMealInput struct {
	ID string `json:"id" jsonschema:"description=Meal id,required"`
}

type simpleOutput struct {
	Message string `json:"message"`
}

type topFoodsInput struct {
	Limit int `json:"limit,omitempty" jsonschema:"description=Max results (default 5)"`
}

type emptyInput struct{}

// Tool handlers

func (s *Server) handleLogMeal(ctx context.Context, req *mcp.CallToolRequest, input logMealInput) (*mcp.CallToolResult, logMealOutput, error) {
	mealType := models.MealLunch
	if input.MealType != "" {
		if !models.IsValidMealType(input.MealType) {
			return nil, logMealOutput{}, fmt.Errorf("unknown meal type: %s", input.MealType)
		}
		mealType = models.MealType(input.MealType)
	}

	res, err := s.tracker.RecordMeal(models.Estimate{
		Name:     input.Name,
		Calories: input.Calories,
		Carbs:    input.Carbs,
		Protein:  input.Protein,
		Fat:      input.Fat,
		Sodium:   input.Sodium,
	}, mealType)
	if err != nil {
		return nil, logMealOutput{}, fmt.Errorf("failed to record meal: %w", err)
	}

	out := logMealOutput{
		ID:      res.Meal.ID,
		Name:    res.Meal.Name,
		Date:    res.Meal.Date,
		Message: fmt.Sprintf("Logged %s: %d kcal (ID: %d)", res.Meal.Name, res.Meal.Calories, res.Meal.ID),
	}
	for _, b := range res.NewBadges {
		out.NewBadges = append(out.NewBadges, fmt.Sprintf("%s %s", b.Icon, b.Name))
	}
	return nil, out, nil
}

func (s *Server) handleListMeals(ctx context.Context, req *mcp.CallToolRequest, input listMealsInput) (*mcp.CallToolResult, any, error) {
	if input.Limit <= 0 {
		input.Limit = 20
	}

	var meals []*models.Meal
	if input.Date != "" {
		meals = s.tracker.Ledger.ByDate(input.Date)
	} else {
		meals = s.tracker.Ledger.All()
	}
	if len(meals) > input.Limit {
		meals = meals[:input.Limit]
	}

	if len(meals) == 0 {
		return nil, map[string]interface{}{"message": "No meals found."}, nil
	}
	return nil, meals, nil
}

func (s *Server) handleDeleteMeal(ctx context.Context, req *mcp.CallToolRequest, input deleteMealInput) (*mcp.CallToolResult, simpleOutput, error) {
	id, err := strconv.ParseInt(input.ID, 10, 64)
	if err != nil {
		return nil, simpleOutput{}, fmt.Errorf("invalid meal id: %s", input.ID)
	}

	if err := s.tracker.Ledger.Delete(id); err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to delete meal: %w", err)
	}
	return nil, simpleOutput{
		Message: fmt.Sprintf("Deleted meal: %s", input.ID),
	}, nil
}

func (s *Server) handleTodaySummary(ctx context.Context, req *mcp.CallToolRequest, input emptyInput) (*mcp.CallToolResult, any, error) {
	return nil, s.tracker.Today(), nil
}

func (s *Server) handleWeeklyScore(ctx context.Context, req *mcp.CallToolRequest, input emptyInput) (*mcp.CallToolResult, any, error) {
	return nil, s.tracker.WeeklyScore(), nil
}

func (s *Server) handleTopFoods(ctx context.Context, req *mcp.CallToolRequest, input topFoodsInput) (*mcp.CallToolResult, any, error) {
	if input.Limit <= 0 {
		input.Limit = 5
	}
	foods := s.tracker.Ledger.TopFoods(input.Limit)
	if len(foods) == 0 {
		return nil, map[string]interface{}{"message": "No meals logged yet."}, nil
	}
	return nil, foods, nil
}

func (s *Server) handleGetBadges(ctx context.Context, req *mcp.CallToolRequest, input emptyInput) (*mcp.CallToolResult, any, error) {
	return nil, map[string]interface{}{
		"badges":   s.tracker.Achievements.Badges(),
		"counters": s.tracker.Achievements.Counters(),
	}, nil
}

func (s *Server) handleFastingStatus(ctx context.Context, req *mcp.CallToolRequest, input emptyInput) (*mcp.CallToolResult, any, error) {
	return nil, s.tracker.Fasting.Status(), nil
}

func (s *Server) handleStartFast(ctx context.Context, req *mcp.CallToolRequest, input emptyInput) (*mcp.CallToolResult, simpleOutput, error) {
	if err := s.tracker.Fasting.StartFasting(); err != nil {
		return nil, simpleOutput{}, err
	}
	st := s.tracker.Fasting.State()
	return nil, simpleOutput{
		Message: fmt.Sprintf("Fasting started (%s schedule)", st.Mode),
	}, nil
}

func (s *Server) handleEndFast(ctx context.Context, req *mcp.CallToolRequest, input emptyInput) (*mcp.CallToolResult, simpleOutput, error) {
	if err := s.tracker.Fasting.End(); err != nil {
		return nil, simpleOutput{}, err
	}
	return nil, simpleOutput{Message: "Fasting phase ended"}, nil
}
