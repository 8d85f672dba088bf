package advisor

// Template is one canned question/answer pair. Placeholders like {income}
// in the answer are substituted with values derived from the user's data.
type Template struct {
	Question string
	Answer   string
}

// KnowledgeBase is the built-in set of financial advice templates served
// when the remote AI service is unreachable. Order matters: the first
// matching template wins.
var KnowledgeBase = []Template{
	// Budget & planning
	{
		Question: "How much should I save each month?",
		Answer:   "A good rule of thumb is the 50/30/20 rule:\n\n• 50% for needs (rent, food, bills)\n• 30% for wants (entertainment, dining out)\n• 20% for savings and debt repayment\n\nBased on your income of ₹{income}, aim to save at least ₹{savings} per month.",
	},
	{
		Question: "How do I create a budget?",
		Answer:   "Follow these steps:\n\n1. Calculate total monthly income\n2. List all fixed expenses (rent, bills)\n3. Track variable expenses (food, transport)\n4. Set spending limits for each category\n5. Review and adjust monthly\n\nYour current spending is ₹{expense}. I recommend setting a budget of ₹{budget}.",
	},
	{
		Question: "What is an emergency fund?",
		Answer:   "An emergency fund is money saved for unexpected expenses like:\n\n• Medical emergencies\n• Job loss\n• Car/home repairs\n• Urgent travel\n\nAim to save 3-6 months of expenses. Based on your spending of ₹{expense}/month, target ₹{emergency} for your emergency fund.",
	},

	// Expense management
	{
		Question: "How can I reduce my expenses?",
		Answer:   "Top 10 ways to cut costs:\n\n1. Cook at home instead of eating out\n2. Cancel unused subscriptions\n3. Use public transport\n4. Buy generic brands\n5. Plan purchases, avoid impulse buying\n6. Use coupons and cashback\n7. Reduce energy consumption\n8. Buy in bulk for essentials\n9. DIY when possible\n10. Compare prices before buying\n\nYour top expense category is {topCategory}. Focus on reducing this first.",
	},
	{
		Question: "Why am I overspending?",
		Answer:   "Common reasons for overspending:\n\n• No budget tracking\n• Impulse purchases\n• Lifestyle inflation\n• Emotional spending\n• Not tracking small expenses\n• Using credit cards carelessly\n\nYou've spent ₹{expense} this month. Review your {topCategory} expenses - that's your highest category.",
	},

	// Investment & growth
	{
		Question: "Where should I invest my money?",
		Answer:   "Investment options for beginners:\n\n1. Fixed Deposits (FD) - Safe, 5-7% returns\n2. Public Provident Fund (PPF) - Tax-free, 7-8%\n3. Mutual Funds - Moderate risk, 10-12%\n4. Stocks - High risk, 12-15%\n5. Gold - Hedge against inflation\n\nStart with low-risk options like FD/PPF. Invest only surplus money after emergency fund.",
	},
	{
		Question: "What is SIP?",
		Answer:   "SIP (Systematic Investment Plan):\n\n• Invest fixed amount regularly (monthly)\n• In mutual funds\n• Benefits from rupee cost averaging\n• Minimum ₹500/month\n• Good for long-term wealth creation\n\nWith your savings potential of ₹{savings}/month, consider starting a SIP of ₹{sip}.",
	},

	// Debt management
	{
		Question: "How do I pay off debt faster?",
		Answer:   "Debt repayment strategies:\n\n1. Snowball Method: Pay smallest debts first\n2. Avalanche Method: Pay highest interest first\n3. Consolidate multiple debts\n4. Negotiate lower interest rates\n5. Increase income through side hustles\n6. Cut unnecessary expenses\n\nPrioritize high-interest debt (credit cards) first. Aim to pay more than minimum.",
	},

	// Savings goals
	{
		Question: "How do I save for a big purchase?",
		Answer:   "Steps to save for goals:\n\n1. Set specific target amount\n2. Set deadline\n3. Calculate monthly savings needed\n4. Open separate savings account\n5. Automate transfers\n6. Track progress monthly\n\nExample: For ₹1,00,000 in 12 months, save ₹8,334/month.",
	},

	// Tax planning
	{
		Question: "How can I save tax?",
		Answer:   "Tax-saving options under Section 80C:\n\n• PPF - Up to ₹1.5 lakh\n• ELSS Mutual Funds - ₹1.5 lakh\n• Life Insurance - ₹1.5 lakh\n• Home Loan Principal - ₹1.5 lakh\n• NPS - Additional ₹50,000\n• Health Insurance - ₹25,000-₹50,000\n\nTotal tax saving potential: ₹2 lakh deduction = Save ₹62,400 tax (31% bracket).",
	},

	// Financial health
	{
		Question: "Am I financially healthy?",
		Answer:   "Financial health indicators:\n\n✅ Emergency fund: 3-6 months expenses\n✅ Savings rate: 20%+ of income\n✅ Debt-to-income: Below 40%\n✅ Budget adherence: 90%+\n✅ Regular investments\n\nYour stats:\n• Income: ₹{income}\n• Expenses: ₹{expense}\n• Savings Rate: {savingsRate}%\n• Status: {healthStatus}",
	},

	// Income growth
	{
		Question: "How can I increase my income?",
		Answer:   "Ways to boost income:\n\n1. Ask for raise/promotion\n2. Switch jobs for better pay\n3. Freelancing/consulting\n4. Start side business\n5. Sell unused items\n6. Rent out space/assets\n7. Teach/tutor online\n8. Invest in skill development\n9. Passive income (dividends, rent)\n10. Part-time work\n\nFocus on skills that pay well in your field.",
	},

	// Credit score
	{
		Question: "How do I improve my credit score?",
		Answer:   "Credit score improvement tips:\n\n1. Pay bills on time (35% impact)\n2. Keep credit utilization below 30%\n3. Don't close old credit cards\n4. Limit hard inquiries\n5. Mix of credit types\n6. Check report for errors\n7. Pay more than minimum\n\nGood score: 750+\nExcellent: 800+\n\nTakes 6-12 months to see improvement.",
	},

	// Insurance
	{
		Question: "What insurance do I need?",
		Answer:   "Essential insurance coverage:\n\n1. Health Insurance\n   • Minimum ₹5 lakh cover\n   • Family floater recommended\n\n2. Term Life Insurance\n   • 10-15x annual income\n   • If you have dependents\n\n3. Accidental Insurance\n   • Additional protection\n\n4. Vehicle Insurance\n   • Mandatory by law\n\nPriority: Health > Term Life > Others",
	},

	// Retirement planning
	{
		Question: "How much do I need for retirement?",
		Answer:   "Retirement planning formula:\n\n1. Estimate monthly expenses at retirement\n2. Multiply by 12 for yearly\n3. Multiply by 25-30 years\n4. Account for inflation (6-7%)\n\nExample:\n• Current age: 30\n• Retirement age: 60\n• Monthly need: ₹50,000\n• Corpus needed: ₹3-4 crore\n\nStart early! Invest ₹10,000/month in equity for 30 years = ₹3.5 crore (12% returns).",
	},
}
