package csc

const StakingABIJSON = `[
  {
    "constant": false,
    "inputs": [{"name": "addr", "type": "address"}],
    "name": "stakeAppend",
    "outputs": [],
    "payable": true,
    "stateMutability": "payable",
    "type": "function"
  },
  {
    "constant": false,
    "inputs": [
      {"name": "addr", "type": "address"},
      {"name": "lockEpochs", "type": "uint256"}
    ],
    "name": "stakeUpdate",
    "outputs": [],
    "payable": false,
    "stateMutability": "nonpayable",
    "type": "function"
  },
  {
    "constant": false,
    "inputs": [
      {"name": "secPk", "type": "bytes"},
      {"name": "bn256Pk", "type": "bytes"},
      {"name": "lockEpochs", "type": "uint256"},
      {"name": "feeRate", "type": "uint256"}
    ],
    "name": "stakeIn",
    "outputs": [],
    "payable": true,
    "stateMutability": "payable",
    "type": "function"
  },
  {
    "constant": false,
    "inputs": [
      {"name": "addr", "type": "address"},
      {"name": "renewal", "type": "bool"}
    ],
    "name": "partnerIn",
    "outputs": [],
    "payable": true,
    "stateMutability": "payable",
    "type": "function"
  },
  {
    "constant": false,
    "inputs": [{"name": "delegateAddress", "type": "address"}],
    "name": "delegateIn",
    "outputs": [],
    "payable": true,
    "stateMutability": "payable",
    "type": "function"
  },
  {
    "constant": false,
    "inputs": [{"name": "delegateAddress", "type": "address"}],
    "name": "delegateOut",
    "outputs": [],
    "payable": false,
    "stateMutability": "nonpayable",
    "type": "function"
  }
]`
