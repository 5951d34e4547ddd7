package handlers

// Minimal ABI fragments for the two deployed contracts this service talks
// to. Embedded as strings so the binary has no runtime file dependency.

const paymentABI = `[
  {
    "name": "verifyPaymentSignature",
    "type": "function",
    "stateMutability": "view",
    "inputs": [
      {"name": "user", "type": "address"},
      {"name": "tier", "type": "uint8"},
      {"name": "contentId", "type": "string"},
      {"name": "nonce", "type": "uint256"},
      {"name": "deadline", "type": "uint256"},
      {"name": "signature", "type": "bytes"}
    ],
    "outputs": [
      {"name": "valid", "type": "bool"},
      {"name": "reason", "type": "string"}
    ]
  },
  {
    "name": "executePayment",
    "type": "function",
    "stateMutability": "nonpayable",
    "inputs": [
      {"name": "user", "type": "address"},
      {"name": "tier", "type": "uint8"},
      {"name": "contentId", "type": "string"},
      {"name": "nonce", "type": "uint256"},
      {"name": "deadline", "type": "uint256"},
      {"name": "signature", "type": "bytes"}
    ],
    "outputs": []
  },
  {
    "name": "getTierPrice",
    "type": "function",
    "stateMutability": "view",
    "inputs": [{"name": "tier", "type": "uint8"}],
    "outputs": [{"name": "", "type": "uint256"}]
  }
]`

const erc20ABI = `[
  {
    "name": "transfer",
    "type": "function",
    "stateMutability": "nonpayable",
    "inputs": [
      {"name": "to", "type": "address"},
      {"name": "amount", "type": "uint256"}
    ],
    "outputs": [{"name": "", "type": "bool"}]
  },
  {
    "name": "transferFrom",
    "type": "function",
    "stateMutability": "nonpayable",
    "inputs": [
      {"name": "from", "type": "address"},
      {"name": "to", "type": "address"},
      {"name": "amount", "type": "uint256"}
    ],
    "outputs": [{"name": "", "type": "bool"}]
  },
  {
    "name": "allowance",
    "type": "function",
    "stateMutability": "view",
    "inputs": [
      {"name": "owner", "type": "address"},
      {"name": "spender", "type": "address"}
    ],
    "outputs": [{"name": "", "type": "uint256"}]
  },
  {
    "name": "balanceOf",
    "type": "function",
    "stateMutability": "view",
    "inputs": [{"name": "account", "type": "address"}],
    "outputs": [{"name": "", "type": "uint256"}]
  },
  {
    "name": "decimals",
    "type": "function",
    "stateMutability": "view",
    "inputs": [],
    "outputs": [{"name": "", "type": "uint8"}]
  }
]`
