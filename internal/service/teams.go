package service

import "puckline/internal/models"

// nhlTeams is the canonical league slate used to seed the teams table.
var nhlTeams = []models.Team{
	{Name: "Boston Bruins", Abbreviation: "BOS", Division: "Atlantic", Conference: "Eastern"},
	{Name: "Buffalo Sabres", Abbreviation: "BUF", Division: "Atlantic", Conference: "Eastern"},
	{Name: "Detroit Red Wings", Abbreviation: "DET", Division: "Atlantic", Conference: "Eastern"},
	{Name: "Florida Panthers", Abbreviation: "FLA", Division: "Atlantic", Conference: "Eastern"},
	{Name: "Montreal Canadiens", Abbreviation: "MTL", Division: "Atlantic", Conference: "Eastern"},
	{Name: "Ottawa Senators", Abbreviation: "OTT", Division: "Atlantic", Conference: "Eastern"},
	{Name: "Tampa Bay Lightning", Abbreviation: "TBL", Division: "Atlantic", Conference: "Eastern"},
	{Name: "Toronto Maple Leafs", Abbreviation: "TOR", Division: "Atlantic", Conference: "Eastern"},
	{Name: "Carolina Hurricanes", Abbreviation: "CAR", Division: "Metropolitan", Conference: "Eastern"},
	{Name: "Columbus Blue Jackets", Abbreviation: "CBJ", Division: "Metropolitan", Conference: "Eastern"},
	{Name: "New Jersey Devils", Abbreviation: "NJD", Division: "Metropolitan", Conference: "Eastern"},
	{Name: "New York Islanders", Abbreviation: "NYI", Division: "Metropolitan", Conference: "Eastern"},
	{Name: "New York Rangers", Abbreviation: "NYR", Division: "Metropolitan", Conference: "Eastern"},
	{Name: "Philadelphia Flyers", Abbreviation: "PHI", Division: "Metropolitan", Conference: "Eastern"},
	{Name: "Pittsburgh Penguins", Abbreviation: "PIT", Division: "Metropolitan", Conference: "Eastern"},
	{Name: "Washington Capitals", Abbreviation: "WSH", Division: "Metropolitan", Conference: "Eastern"},
	{Name: "Chicago Blackhawks", Abbreviation: "CHI", Division: "Central", Conference: "Western"},
	{Name: "Colorado Avalanche", Abbreviation: "COL", Division: "Central", Conference: "Western"},
	{Name: "Dallas Stars", Abbreviation: "DAL", Division: "Central", Conference: "Western"},
	{Name: "Minnesota Wild", Abbreviation: "MIN", Division: "Central", Conference: "Western"},
	{Name: "Nashville Predators", Abbreviation: "NSH", Division: "Central", Conference: "Western"},
	{Name: "St. Louis Blues", Abbreviation: "STL", Division: "Central", Conference: "Western"},
	{Name: "Winnipeg Jets", Abbreviation: "WPG", Division: "Central", Conference: "Western"},
	{Name: "Utah Mammoth", Abbreviation: "UTA", Division: "Central", Conference: "Western"},
	{Name: "Anaheim Ducks", Abbreviation: "ANA", Division: "Pacific", Conference: "Western"},
	{Name: "Calgary Flames", Abbreviation: "CGY", Division: "Pacific", Conference: "Western"},
	{Name: "Edmonton Oilers", Abbreviation: "EDM", Division: "Pacific", Conference: "Western"},
	{Name: "Los Angeles Kings", Abbreviation: "LAK", Division: "Pacific", Conference: "Western"},
	{Name: "San Jose Sharks", Abbreviation: "SJS", Division: "Pacific", Conference: "Western"},
	{Name: "Seattle Kraken", Abbreviation: "SEA", Division: "Pacific", Conference: "Western"},
	{Name: "Vancouver Canucks", Abbreviation: "VAN", Division: "Pacific", Conference: "Western"},
	{Name: "Vegas Golden Knights", Abbreviation: "VGK", Division: "Pacific", Conference: "Western"},
}
