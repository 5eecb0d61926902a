package memory

import "github.com/matchday/matchday-go/internal/domain"

// matches is the static season calendar, in schedule order.
var matches = []domain.Match{
	{
		ID:    "match23",
		Date:  "9-Apr-25",
		Time:  "7:30 PM",
		Team1: domain.Team{Name: "Gujarat Titans", Logo: "https://upload.wikimedia.org/wikipedia/en/0/09/Gujarat_Titans_Logo.svg"},
		Team2: domain.Team{Name: "Rajasthan Royals", Logo: "https://upload.wikimedia.org/wikipedia/en/5/5c/This_is_the_logo_for_Rajasthan_Royals%2C_a_cricket_team_playing_in_the_Indian_Premier_League_%28IPL%29.svg"},
		Venue: "Narendra Modi Stadium, Ahmedabad",
	},
	{
		ID:    "match24",
		Date:  "10-Apr-25",
		Time:  "7:30 PM",
		Team1: domain.Team{Name: "Royal Challengers Bengaluru", Logo: "https://upload.wikimedia.org/wikipedia/en/d/d4/Royal_Challengers_Bengaluru_Logo.svg"},
		Team2: domain.Team{Name: "Delhi Capitals", Logo: "https://upload.wikimedia.org/wikipedia/en/2/2f/Delhi_Capitals.svg"},
		Venue: "M. Chinnaswamy Stadium, Bangalore",
	},
	{
		ID:    "match25",
		Date:  "11-Apr-25",
		Time:  "7:30 PM",
		Team1: domain.Team{Name: "Chennai Super Kings", Logo: "https://upload.wikimedia.org/wikipedia/en/2/2b/Chennai_Super_Kings_Logo.svg"},
		Team2: domain.Team{Name: "Kolkata Knight Riders", Logo: "https://upload.wikimedia.org/wikipedia/en/4/4c/Kolkata_Knight_Riders_Logo.svg"},
		Venue: "MA Chidambaram Stadium, Chennai",
	},
	{
		ID:    "match26",
		Date:  "12-Apr-25",
		Time:  "3:30 PM",
		Team1: domain.Team{Name: "Lucknow Super Giants", Logo: "https://upload.wikimedia.org/wikipedia/en/a/a9/Lucknow_Super_Giants_IPL_Logo.svg"},
		Team2: domain.Team{Name: "Gujarat Titans", Logo: "https://upload.wikimedia.org/wikipedia/en/0/09/Gujarat_Titans_Logo.svg"},
		Venue: "BRSABV Ekana Cricket Stadium, Lucknow",
	},
	{
		ID:    "match27",
		Date:  "12-Apr-25",
		Time:  "7:30 PM",
		Team1: domain.Team{Name: "Sunrisers Hyderabad", Logo: "https://upload.wikimedia.org/wikipedia/en/5/51/Sunrisers_Hyderabad_Logo.svg"},
		Team2: domain.Team{Name: "Punjab Kings", Logo: "https://upload.wikimedia.org/wikipedia/en/d/d4/Punjab_Kings_Logo.svg"},
		Venue: "Rajiv Gandhi International Cricket Stadium, Hyderabad",
	},
	{
		ID:    "match28",
		Date:  "13-Apr-25",
		Time:  "3:30 PM",
		Team1: domain.Team{Name: "Rajasthan Royals", Logo: "https://upload.wikimedia.org/wikipedia/en/5/5c/This_is_the_logo_for_Rajasthan_Royals%2C_a_cricket_team_playing_in_the_Indian_Premier_League_%28IPL%29.svg"},
		Team2: domain.Team{Name: "Royal Challengers Bengaluru", Logo: "https://upload.wikimedia.org/wikipedia/en/d/d4/Royal_Challengers_Bengaluru_Logo.svg"},
		Venue: "Sawai Mansingh Stadium, Jaipur",
	},
	{
		ID:    "match29",
		Date:  "13-Apr-25",
		Time:  "7:30 PM",
		Team1: domain.Team{Name: "Delhi Capitals", Logo: "https://upload.wikimedia.org/wikipedia/en/2/2f/Delhi_Capitals.svg"},
		Team2: domain.Team{Name: "Mumbai Indians", Logo: "https://upload.wikimedia.org/wikipedia/en/c/cd/Mumbai_Indians_Logo.svg"},
		Venue: "Arun Jaitley Stadium, Delhi",
	},
	{
		ID:    "match30",
		Date:  "14-Apr-25",
		Time:  "7:30 PM",
		Team1: domain.Team{Name: "Lucknow Super Giants", Logo: "https://upload.wikimedia.org/wikipedia/en/a/a9/Lucknow_Super_Giants_IPL_Logo.svg"},
		Team2: domain.Team{Name: "Chennai Super Kings", Logo: "https://upload.wikimedia.org/wikipedia/en/2/2b/Chennai_Super_Kings_Logo.svg"},
		Venue: "BRSABV Ekana Cricket Stadium, Lucknow",
	},
	{
		ID:    "match31",
		Date:  "15-Apr-25",
		Time:  "7:30 PM",
		Team1: domain.Team{Name: "Punjab Kings", Logo: "https://upload.wikimedia.org/wikipedia/en/d/d4/Punjab_Kings_Logo.svg"},
		Team2: domain.Team{Name: "Kolkata Knight Riders", Logo: "https://upload.wikimedia.org/wikipedia/en/4/4c/Kolkata_Knight_Riders_Logo.svg"},
		Venue: "Mullanpur Stadium, New Chandigarh, Punjab",
	},
	{
		ID:    "match32",
		Date:  "16-Apr-25",
		Time:  "7:30 PM",
		Team1: domain.Team{Name: "Delhi Capitals", Logo: "https://upload.wikimedia.org/wikipedia/en/2/2f/Delhi_Capitals.svg"},
		Team2: domain.Team{Name: "Rajasthan Royals", Logo: "https://upload.wikimedia.org/wikipedia/en/5/5c/This_is_the_logo_for_Rajasthan_Royals%2C_a_cricket_team_playing_in_the_Indian_Premier_League_%28IPL%29.svg"},
		Venue: "Arun Jaitley Stadium, Delhi",
	},
	{
		ID:    "match33",
		Date:  "17-Apr-25",
		Time:  "7:30 PM",
		Team1: domain.Team{Name: "Mumbai Indians", Logo: "https://upload.wikimedia.org/wikipedia/en/c/cd/Mumbai_Indians_Logo.svg"},
		Team2: domain.Team{Name: "Sunrisers Hyderabad", Logo: "https://upload.wikimedia.org/wikipedia/en/5/51/Sunrisers_Hyderabad_Logo.svg"},
		Venue: "Wankhede Stadium, Mumbai",
	},
	{
		ID:    "match34",
		Date:  "18-Apr-25",
		Time:  "7:30 PM",
		Team1: domain.Team{Name: "Royal Challengers Bengaluru", Logo: "https://upload.wikimedia.org/wikipedia/en/d/d4/Royal_Challengers_Bengaluru_Logo.svg"},
		Team2: domain.Team{Name: "Punjab Kings", Logo: "https://upload.wikimedia.org/wikipedia/en/d/d4/Punjab_Kings_Logo.svg"},
		Venue: "M. Chinnaswamy Stadium, Bangalore",
	},
	{
		ID:    "match35",
		Date:  "19-Apr-25",
		Time:  "3:30 PM",
		Team1: domain.Team{Name: "Gujarat Titans", Logo: "https://upload.wikimedia.org/wikipedia/en/0/09/Gujarat_Titans_Logo.svg"},
		Team2: domain.Team{Name: "Delhi Capitals", Logo: "https://upload.wikimedia.org/wikipedia/en/2/2f/Delhi_Capitals.svg"},
		Venue: "Narendra Modi Stadium, Ahmedabad",
	},
	{
		ID:    "match36",
		Date:  "19-Apr-25",
		Time:  "7:30 PM",
		Team1: domain.Team{Name: "Rajasthan Royals", Logo: "https://upload.wikimedia.org/wikipedia/en/5/5c/This_is_the_logo_for_Rajasthan_Royals%2C_a_cricket_team_playing_in_the_Indian_Premier_League_%28IPL%29.svg"},
		Team2: domain.Team{Name: "Lucknow Super Giants", Logo: "https://upload.wikimedia.org/wikipedia/en/a/a9/Lucknow_Super_Giants_IPL_Logo.svg"},
		Venue: "Sawai Mansingh Stadium, Jaipur",
	},
	{
		ID:    "match37",
		Date:  "20-Apr-25",
		Time:  "3:30 PM",
		Team1: domain.Team{Name: "Punjab Kings", Logo: "https://upload.wikimedia.org/wikipedia/en/d/d4/Punjab_Kings_Logo.svg"},
		Team2: domain.Team{Name: "Royal Challengers Bengaluru", Logo: "https://upload.wikimedia.org/wikipedia/en/d/d4/Royal_Challengers_Bengaluru_Logo.svg"},
		Venue: "Mullanpur Stadium, New Chandigarh, Punjab",
	},
	{
		ID:    "match38",
		Date:  "20-Apr-25",
		Time:  "7:30 PM",
		Team1: domain.Team{Name: "Mumbai Indians", Logo: "https://upload.wikimedia.org/wikipedia/en/c/cd/Mumbai_Indians_Logo.svg"},
		Team2: domain.Team{Name: "Chennai Super Kings", Logo: "https://upload.wikimedia.org/wikipedia/en/2/2b/Chennai_Super_Kings_Logo.svg"},
		Venue: "Wankhede Stadium, Mumbai",
	},
	{
		ID:    "match39",
		Date:  "21-Apr-25",
		Time:  "7:30 PM",
		Team1: domain.Team{Name: "Kolkata Knight Riders", Logo: "https://upload.wikimedia.org/wikipedia/en/4/4c/Kolkata_Knight_Riders_Logo.svg"},
		Team2: domain.Team{Name: "Gujarat Titans", Logo: "https://upload.wikimedia.org/wikipedia/en/0/09/Gujarat_Titans_Logo.svg"},
		Venue: "Eden Gardens, Kolkata",
	},
	{
		ID:    "match40",
		Date:  "22-Apr-25",
		Time:  "7:30 PM",
		Team1: domain.Team{Name: "Lucknow Super Giants", Logo: "https://upload.wikimedia.org/wikipedia/en/a/a9/Lucknow_Super_Giants_IPL_Logo.svg"},
		Team2: domain.Team{Name: "Delhi Capitals", Logo: "https://upload.wikimedia.org/wikipedia/en/2/2f/Delhi_Capitals.svg"},
		Venue: "BRSABV Ekana Cricket Stadium, Lucknow",
	},
	{
		ID:    "match41",
		Date:  "23-Apr-25",
		Time:  "7:30 PM",
		Team1: domain.Team{Name: "Sunrisers Hyderabad", Logo: "https://upload.wikimedia.org/wikipedia/en/5/51/Sunrisers_Hyderabad_Logo.svg"},
		Team2: domain.Team{Name: "Mumbai Indians", Logo: "https://upload.wikimedia.org/wikipedia/en/c/cd/Mumbai_Indians_Logo.svg"},
		Venue: "Rajiv Gandhi International Cricket Stadium, Hyderabad",
	},
	{
		ID:    "match42",
		Date:  "24-Apr-25",
		Time:  "7:30 PM",
		Team1: domain.Team{Name: "Royal Challengers Bengaluru", Logo: "https://upload.wikimedia.org/wikipedia/en/d/d4/Royal_Challengers_Bengaluru_Logo.svg"},
		Team2: domain.Team{Name: "Rajasthan Royals", Logo: "https://upload.wikimedia.org/wikipedia/en/5/5c/This_is_the_logo_for_Rajasthan_Royals%2C_a_cricket_team_playing_in_the_Indian_Premier_League_%28IPL%29.svg"},
		Venue: "M. Chinnaswamy Stadium, Bangalore",
	},
	{
		ID:    "match43",
		Date:  "25-Apr-25",
		Time:  "7:30 PM",
		Team1: domain.Team{Name: "Chennai Super Kings", Logo: "https://upload.wikimedia.org/wikipedia/en/2/2b/Chennai_Super_Kings_Logo.svg"},
		Team2: domain.Team{Name: "Sunrisers Hyderabad", Logo: "https://upload.wikimedia.org/wikipedia/en/5/51/Sunrisers_Hyderabad_Logo.svg"},
		Venue: "MA Chidambaram Stadium, Chennai",
	},
	{
		ID:    "match44",
		Date:  "26-Apr-25",
		Time:  "7:30 PM",
		Team1: domain.Team{Name: "Kolkata Knight Riders", Logo: "https://upload.wikimedia.org/wikipedia/en/4/4c/Kolkata_Knight_Riders_Logo.svg"},
		Team2: domain.Team{Name: "Punjab Kings", Logo: "https://upload.wikimedia.org/wikipedia/en/d/d4/Punjab_Kings_Logo.svg"},
		Venue: "Eden Gardens, Kolkata",
	},
	{
		ID:    "match45",
		Date:  "27-Apr-25",
		Time:  "3:30 PM",
		Team1: domain.Team{Name: "Mumbai Indians", Logo: "https://upload.wikimedia.org/wikipedia/en/c/cd/Mumbai_Indians_Logo.svg"},
		Team2: domain.Team{Name: "Lucknow Super Giants", Logo: "https://upload.wikimedia.org/wikipedia/en/a/a9/Lucknow_Super_Giants_IPL_Logo.svg"},
		Venue: "Wankhede Stadium, Mumbai",
	},
	{
		ID:    "match46",
		Date:  "27-Apr-25",
		Time:  "7:30 PM",
		Team1: domain.Team{Name: "Delhi Capitals", Logo: "https://upload.wikimedia.org/wikipedia/en/2/2f/Delhi_Capitals.svg"},
		Team2: domain.Team{Name: "Royal Challengers Bengaluru", Logo: "https://upload.wikimedia.org/wikipedia/en/d/d4/Royal_Challengers_Bengaluru_Logo.svg"},
		Venue: "Arun Jaitley Stadium, Delhi",
	},
	{
		ID:    "match47",
		Date:  "28-Apr-25",
		Time:  "7:30 PM",
		Team1: domain.Team{Name: "Rajasthan Royals", Logo: "https://upload.wikimedia.org/wikipedia/en/5/5c/This_is_the_logo_for_Rajasthan_Royals%2C_a_cricket_team_playing_in_the_Indian_Premier_League_%28IPL%29.svg"},
		Team2: domain.Team{Name: "Gujarat Titans", Logo: "https://upload.wikimedia.org/wikipedia/en/0/09/Gujarat_Titans_Logo.svg"},
		Venue: "Sawai Mansingh Stadium, Jaipur",
	},
	{
		ID:    "match48",
		Date:  "29-Apr-25",
		Time:  "7:30 PM",
		Team1: domain.Team{Name: "Delhi Capitals", Logo: "https://upload.wikimedia.org/wikipedia/en/2/2f/Delhi_Capitals.svg"},
		Team2: domain.Team{Name: "Kolkata Knight Riders", Logo: "https://upload.wikimedia.org/wikipedia/en/4/4c/Kolkata_Knight_Riders_Logo.svg"},
		Venue: "Arun Jaitley Stadium, Delhi",
	},
	{
		ID:    "match49",
		Date:  "30-Apr-25",
		Time:  "7:30 PM",
		Team1: domain.Team{Name: "Chennai Super Kings", Logo: "https://upload.wikimedia.org/wikipedia/en/2/2b/Chennai_Super_Kings_Logo.svg"},
		Team2: domain.Team{Name: "Punjab Kings", Logo: "https://upload.wikimedia.org/wikipedia/en/d/d4/Punjab_Kings_Logo.svg"},
		Venue: "MA Chidambaram Stadium, Chennai",
	},
	{
		ID:    "match50",
		Date:  "01-May-25",
		Time:  "7:30 PM",
		Team1: domain.Team{Name: "Rajasthan Royals", Logo: "https://upload.wikimedia.org/wikipedia/en/5/5c/This_is_the_logo_for_Rajasthan_Royals%2C_a_cricket_team_playing_in_the_Indian_Premier_League_%28IPL%29.svg"},
		Team2: domain.Team{Name: "Mumbai Indians", Logo: "https://upload.wikimedia.org/wikipedia/en/c/cd/Mumbai_Indians_Logo.svg"},
		Venue: "Sawai Mansingh Stadium, Jaipur",
	},
	{
		ID:    "match51",
		Date:  "02-May-25",
		Time:  "7:30 PM",
		Team1: domain.Team{Name: "Gujarat Titans", Logo: "https://upload.wikimedia.org/wikipedia/en/0/09/Gujarat_Titans_Logo.svg"},
		Team2: domain.Team{Name: "Sunrisers Hyderabad", Logo: "https://upload.wikimedia.org/wikipedia/en/5/51/Sunrisers_Hyderabad_Logo.svg"},
		Venue: "Narendra Modi Stadium, Ahmedabad",
	},
	{
		ID:    "match52",
		Date:  "03-May-25",
		Time:  "7:30 PM",
		Team1: domain.Team{Name: "Royal Challengers Bengaluru", Logo: "https://upload.wikimedia.org/wikipedia/en/d/d4/Royal_Challengers_Bengaluru_Logo.svg"},
		Team2: domain.Team{Name: "Chennai Super Kings", Logo: "https://upload.wikimedia.org/wikipedia/en/2/2b/Chennai_Super_Kings_Logo.svg"},
		Venue: "M. Chinnaswamy Stadium, Bangalore",
	},
	{
		ID:    "match53",
		Date:  "04-May-25",
		Time:  "3:30 PM",
		Team1: domain.Team{Name: "Kolkata Knight Riders", Logo: "https://upload.wikimedia.org/wikipedia/en/4/4c/Kolkata_Knight_Riders_Logo.svg"},
		Team2: domain.Team{Name: "Rajasthan Royals", Logo: "https://upload.wikimedia.org/wikipedia/en/5/5c/This_is_the_logo_for_Rajasthan_Royals%2C_a_cricket_team_playing_in_the_Indian_Premier_League_%28IPL%29.svg"},
		Venue: "Eden Gardens, Kolkata",
	},
	{
		ID:    "match54",
		Date:  "04-May-25",
		Time:  "7:30 PM",
		Team1: domain.Team{Name: "Punjab Kings", Logo: "https://upload.wikimedia.org/wikipedia/en/d/d4/Punjab_Kings_Logo.svg"},
		Team2: domain.Team{Name: "Lucknow Super Giants", Logo: "https://upload.wikimedia.org/wikipedia/en/a/a9/Lucknow_Super_Giants_IPL_Logo.svg"},
		Venue: "Mullanpur Stadium, New Chandigarh, Punjab",
	},
	{
		ID:    "match55",
		Date:  "05-May-25",
		Time:  "7:30 PM",
		Team1: domain.Team{Name: "Sunrisers Hyderabad", Logo: "https://upload.wikimedia.org/wikipedia/en/5/51/Sunrisers_Hyderabad_Logo.svg"},
		Team2: domain.Team{Name: "Delhi Capitals", Logo: "https://upload.wikimedia.org/wikipedia/en/2/2f/Delhi_Capitals.svg"},
		Venue: "Rajiv Gandhi International Cricket Stadium, Hyderabad",
	},
	{
		ID:    "match56",
		Date:  "06-May-25",
		Time:  "7:30 PM",
		Team1: domain.Team{Name: "Mumbai Indians", Logo: "https://upload.wikimedia.org/wikipedia/en/c/cd/Mumbai_Indians_Logo.svg"},
		Team2: domain.Team{Name: "Gujarat Titans", Logo: "https://upload.wikimedia.org/wikipedia/en/0/09/Gujarat_Titans_Logo.svg"},
		Venue: "Wankhede Stadium, Mumbai",
	},
	{
		ID:    "match57",
		Date:  "07-May-25",
		Time:  "7:30 PM",
		Team1: domain.Team{Name: "Kolkata Knight Riders", Logo: "https://upload.wikimedia.org/wikipedia/en/4/4c/Kolkata_Knight_Riders_Logo.svg"},
		Team2: domain.Team{Name: "Chennai Super Kings", Logo: "https://upload.wikimedia.org/wikipedia/en/2/2b/Chennai_Super_Kings_Logo.svg"},
		Venue: "Eden Gardens, Kolkata",
	},
	{
		ID:    "match58",
		Date:  "08-May-25",
		Time:  "7:30 PM",
		Team1: domain.Team{Name: "Punjab Kings", Logo: "https://upload.wikimedia.org/wikipedia/en/d/d4/Punjab_Kings_Logo.svg"},
		Team2: domain.Team{Name: "Delhi Capitals", Logo: "https://upload.wikimedia.org/wikipedia/en/2/2f/Delhi_Capitals.svg"},
		Venue: "Mullanpur Stadium, New Chandigarh, Punjab",
	},
	{
		ID:    "match59",
		Date:  "09-May-25",
		Time:  "7:30 PM",
		Team1: domain.Team{Name: "Lucknow Super Giants", Logo: "https://upload.wikimedia.org/wikipedia/en/a/a9/Lucknow_Super_Giants_IPL_Logo.svg"},
		Team2: domain.Team{Name: "Royal Challengers Bengaluru", Logo: "https://upload.wikimedia.org/wikipedia/en/d/d4/Royal_Challengers_Bengaluru_Logo.svg"},
		Venue: "BRSABV Ekana Cricket Stadium, Lucknow",
	},
	{
		ID:    "match60",
		Date:  "10-May-25",
		Time:  "7:30 PM",
		Team1: domain.Team{Name: "Sunrisers Hyderabad", Logo: "https://upload.wikimedia.org/wikipedia/en/5/51/Sunrisers_Hyderabad_Logo.svg"},
		Team2: domain.Team{Name: "Kolkata Knight Riders", Logo: "https://upload.wikimedia.org/wikipedia/en/4/4c/Kolkata_Knight_Riders_Logo.svg"},
		Venue: "Rajiv Gandhi International Cricket Stadium, Hyderabad",
	},
	{
		ID:    "match61",
		Date:  "11-May-25",
		Time:  "3:30 PM",
		Team1: domain.Team{Name: "Punjab Kings", Logo: "https://upload.wikimedia.org/wikipedia/en/d/d4/Punjab_Kings_Logo.svg"},
		Team2: domain.Team{Name: "Mumbai Indians", Logo: "https://upload.wikimedia.org/wikipedia/en/c/cd/Mumbai_Indians_Logo.svg"},
		Venue: "Mullanpur Stadium, New Chandigarh, Punjab",
	},
	{
		ID:    "match62",
		Date:  "11-May-25",
		Time:  "7:30 PM",
		Team1: domain.Team{Name: "Delhi Capitals", Logo: "https://upload.wikimedia.org/wikipedia/en/2/2f/Delhi_Capitals.svg"},
		Team2: domain.Team{Name: "Gujarat Titans", Logo: "https://upload.wikimedia.org/wikipedia/en/0/09/Gujarat_Titans_Logo.svg"},
		Venue: "Arun Jaitley Stadium, Delhi",
	},
	{
		ID:    "match63",
		Date:  "12-May-25",
		Time:  "7:30 PM",
		Team1: domain.Team{Name: "Chennai Super Kings", Logo: "https://upload.wikimedia.org/wikipedia/en/2/2b/Chennai_Super_Kings_Logo.svg"},
		Team2: domain.Team{Name: "Rajasthan Royals", Logo: "https://upload.wikimedia.org/wikipedia/en/5/5c/This_is_the_logo_for_Rajasthan_Royals%2C_a_cricket_team_playing_in_the_Indian_Premier_League_%28IPL%29.svg"},
		Venue: "MA Chidambaram Stadium, Chennai",
	},
	{
		ID:    "match64",
		Date:  "13-May-25",
		Time:  "7:30 PM",
		Team1: domain.Team{Name: "Royal Challengers Bengaluru", Logo: "https://upload.wikimedia.org/wikipedia/en/d/d4/Royal_Challengers_Bengaluru_Logo.svg"},
		Team2: domain.Team{Name: "Sunrisers Hyderabad", Logo: "https://upload.wikimedia.org/wikipedia/en/5/51/Sunrisers_Hyderabad_Logo.svg"},
		Venue: "M. Chinnaswamy Stadium, Bangalore",
	},
	{
		ID:    "match65",
		Date:  "14-May-25",
		Time:  "7:30 PM",
		Team1: domain.Team{Name: "Gujarat Titans", Logo: "https://upload.wikimedia.org/wikipedia/en/0/09/Gujarat_Titans_Logo.svg"},
		Team2: domain.Team{Name: "Lucknow Super Giants", Logo: "https://upload.wikimedia.org/wikipedia/en/a/a9/Lucknow_Super_Giants_IPL_Logo.svg"},
		Venue: "Narendra Modi Stadium, Ahmedabad",
	},
	{
		ID:    "match66",
		Date:  "15-May-25",
		Time:  "7:30 PM",
		Team1: domain.Team{Name: "Mumbai Indians", Logo: "https://upload.wikimedia.org/wikipedia/en/c/cd/Mumbai_Indians_Logo.svg"},
		Team2: domain.Team{Name: "Delhi Capitals", Logo: "https://upload.wikimedia.org/wikipedia/en/2/2f/Delhi_Capitals.svg"},
		Venue: "Wankhede Stadium, Mumbai",
	},
	{
		ID:    "match67",
		Date:  "16-May-25",
		Time:  "7:30 PM",
		Team1: domain.Team{Name: "Rajasthan Royals", Logo: "https://upload.wikimedia.org/wikipedia/en/5/5c/This_is_the_logo_for_Rajasthan_Royals%2C_a_cricket_team_playing_in_the_Indian_Premier_League_%28IPL%29.svg"},
		Team2: domain.Team{Name: "Punjab Kings", Logo: "https://upload.wikimedia.org/wikipedia/en/d/d4/Punjab_Kings_Logo.svg"},
		Venue: "Sawai Mansingh Stadium, Jaipur",
	},
	{
		ID:    "match68",
		Date:  "17-May-25",
		Time:  "7:30 PM",
		Team1: domain.Team{Name: "Royal Challengers Bengaluru", Logo: "https://upload.wikimedia.org/wikipedia/en/d/d4/Royal_Challengers_Bengaluru_Logo.svg"},
		Team2: domain.Team{Name: "Kolkata Knight Riders", Logo: "https://upload.wikimedia.org/wikipedia/en/4/4c/Kolkata_Knight_Riders_Logo.svg"},
		Venue: "M. Chinnaswamy Stadium, Bangalore",
	},
	{
		ID:    "match69",
		Date:  "18-May-25",
		Time:  "3:30 PM",
		Team1: domain.Team{Name: "Gujarat Titans", Logo: "https://upload.wikimedia.org/wikipedia/en/0/09/Gujarat_Titans_Logo.svg"},
		Team2: domain.Team{Name: "Chennai Super Kings", Logo: "https://upload.wikimedia.org/wikipedia/en/2/2b/Chennai_Super_Kings_Logo.svg"},
		Venue: "Narendra Modi Stadium, Ahmedabad",
	},
	{
		ID:    "match70",
		Date:  "18-May-25",
		Time:  "7:30 PM",
		Team1: domain.Team{Name: "Lucknow Super Giants", Logo: "https://upload.wikimedia.org/wikipedia/en/a/a9/Lucknow_Super_Giants_IPL_Logo.svg"},
		Team2: domain.Team{Name: "Sunrisers Hyderabad", Logo: "https://upload.wikimedia.org/wikipedia/en/5/51/Sunrisers_Hyderabad_Logo.svg"},
		Venue: "BRSABV Ekana Cricket Stadium, Lucknow",
	},
}
